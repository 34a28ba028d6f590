package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

func newTransaction(t *testing.T, session shared.SessionID, day int, typ ledger.TransactionType, amount, before int) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(ledger.Entry{
		SessionID:     session,
		Day:           day,
		RecordedAt:    time.Date(2026, 3, 1, 12, 0, day, 0, time.UTC),
		Type:          typ,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  before + amount,
		Description:   string(typ),
	})
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	ctx := context.Background()
	session := shared.NewSessionID()
	other := shared.NewSessionID()

	fee := newTransaction(t, session, 1, ledger.TransactionTypeSigningFee, -200, 1000)
	payout := newTransaction(t, session, 4, ledger.TransactionTypeProjectPayout, 1400, 800)
	require.NoError(t, repo.Create(ctx, fee))
	require.NoError(t, repo.Create(ctx, payout))
	require.NoError(t, repo.Create(ctx, newTransaction(t, other, 1, ledger.TransactionTypeEquipment, -450, 1000)))

	// Act
	found, err := repo.FindBySession(ctx, session, ledger.DefaultQueryOptions())
	require.NoError(t, err)
	count, err := repo.CountBySession(ctx, session, ledger.DefaultQueryOptions())
	require.NoError(t, err)

	// Assert
	require.Len(t, found, 2)
	assert.Equal(t, 2, count)
	assert.Equal(t, payout.ID(), found[0].ID(), "newest day first")
	assert.Equal(t, ledger.CategoryProjectRevenue, found[0].Category())
	assert.Equal(t, 2200, found[0].BalanceAfter())
	assert.Equal(t, session, found[1].SessionID())
}

func TestTransactionRepository_Filters(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	ctx := context.Background()
	session := shared.NewSessionID()

	require.NoError(t, repo.Create(ctx, newTransaction(t, session, 1, ledger.TransactionTypeSigningFee, -200, 1000)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, session, 7, ledger.TransactionTypeSalaries, -100, 800)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, session, 9, ledger.TransactionTypeEquipment, -300, 700)))

	staffCosts := ledger.CategoryStaffCosts
	opts := ledger.DefaultQueryOptions()
	opts.Category = &staffCosts

	byCategory, err := repo.FindBySession(ctx, session, opts)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	from, to := 2, 9
	opts = ledger.DefaultQueryOptions()
	opts.FromDay, opts.ToDay = &from, &to
	opts.OrderBy = "day ASC"

	byDay, err := repo.FindBySession(ctx, session, opts)
	require.NoError(t, err)
	require.Len(t, byDay, 2)
	assert.Equal(t, 7, byDay[0].Day())
	assert.Equal(t, 9, byDay[1].Day())
}
