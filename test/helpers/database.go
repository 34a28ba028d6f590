package helpers

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/database"
)

// JournalEpoch is the wall-clock time test journals are frozen at
var JournalEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// NewTestDB returns a migrated in-memory SQLite database closed at the end of t
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Journals bundles both gorm repositories over one test database
type Journals struct {
	DB            *gorm.DB
	Clock         *shared.MockClock
	Transactions  *persistence.GormTransactionRepository
	Notifications *persistence.GormNotificationRepository
}

// NewJournals opens a test database with the ledger and notification journal
// wired to a clock frozen at JournalEpoch
func NewJournals(t *testing.T) *Journals {
	t.Helper()
	db := NewTestDB(t)
	clock := shared.NewMockClock(JournalEpoch)
	return &Journals{
		DB:            db,
		Clock:         clock,
		Transactions:  persistence.NewGormTransactionRepository(db),
		Notifications: persistence.NewGormNotificationRepository(db, clock),
	}
}
