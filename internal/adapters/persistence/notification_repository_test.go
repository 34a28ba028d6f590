package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

func TestNotificationRepository_AppendAndList(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormNotificationRepository(db, shared.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	ctx := context.Background()
	session := shared.NewSessionID()

	events := []notification.Event{
		notification.New(notification.KindStaffHired, 1, "Staff Hired", "%s joined", "Ava"),
		notification.New(notification.KindInsufficientFunds, 2, "Insufficient Funds", "need $%d", 500),
		notification.New(notification.KindStaffHired, 3, "Staff Hired", "%s joined", "Ben"),
	}

	// Act
	require.NoError(t, repo.Append(ctx, session, events...))
	require.NoError(t, repo.Append(ctx, shared.NewSessionID(), events[0]))

	all, err := repo.List(ctx, session, nil, 0, 0)
	require.NoError(t, err)
	hired := notification.KindStaffHired
	onlyHired, err := repo.List(ctx, session, &hired, 0, 0)
	require.NoError(t, err)
	page, err := repo.List(ctx, session, nil, 1, 1)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, events, all)
	require.Len(t, onlyHired, 2)
	assert.Equal(t, "Ben joined", onlyHired[1].Description)
	require.Len(t, page, 1)
	assert.Equal(t, notification.KindInsufficientFunds, page[0].Kind)
}

func TestNotificationRepository_AppendNothing(t *testing.T) {
	repo := persistence.NewGormNotificationRepository(helpers.NewTestDB(t), nil)

	assert.NoError(t, repo.Append(context.Background(), shared.NewSessionID()))
}
