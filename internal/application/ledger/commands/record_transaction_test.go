package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/application/ledger/commands"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

func TestRecordTransaction_PersistsTheMovement(t *testing.T) {
	// Arrange
	repo := persistence.NewGormTransactionRepository(helpers.NewTestDB(t))
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	handler := commands.NewRecordTransactionHandler(repo, clock)
	session := shared.NewSessionID()

	// Act
	resp, err := handler.Handle(context.Background(), &commands.RecordTransactionCommand{
		SessionID:         session.String(),
		Day:               3,
		TransactionType:   "SIGNING_FEE",
		Amount:            -240,
		BalanceBefore:     1000,
		BalanceAfter:      760,
		Description:       "Signing fee for Ana",
		RelatedEntityType: "staff",
		RelatedEntityID:   "ana",
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.RecordTransactionResponse)
	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, clock.Now(), result.RecordedAt)

	stored, err := repo.FindBySession(context.Background(), session, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, ledger.CategoryStaffCosts, stored[0].Category())
	assert.Equal(t, -240, stored[0].Amount())
	assert.Equal(t, 3, stored[0].Day())
}

func TestRecordTransaction_RejectsInvalidInput(t *testing.T) {
	repo := persistence.NewGormTransactionRepository(helpers.NewTestDB(t))
	handler := commands.NewRecordTransactionHandler(repo, nil)
	session := shared.NewSessionID().String()

	tests := []struct {
		name    string
		cmd     *commands.RecordTransactionCommand
		wantErr string
	}{
		{"unknown type", &commands.RecordTransactionCommand{SessionID: session, Day: 1, TransactionType: "REFUEL", Amount: -1, BalanceBefore: 1, BalanceAfter: 0}, "invalid transaction type"},
		{"bad session", &commands.RecordTransactionCommand{SessionID: "nope", Day: 1, TransactionType: "TRAINING", Amount: -1, BalanceBefore: 1, BalanceAfter: 0}, "invalid session ID"},
		{"broken balance", &commands.RecordTransactionCommand{SessionID: session, Day: 1, TransactionType: "TRAINING", Amount: -100, BalanceBefore: 500, BalanceAfter: 450}, "failed to create transaction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
