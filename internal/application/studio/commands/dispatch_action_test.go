package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledgerCmd "github.com/andrescamacho/studiosim-go/internal/application/ledger/commands"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	"github.com/andrescamacho/studiosim-go/internal/application/studio/commands"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

func stateWithCandidate(money int) *game.State {
	s := helpers.NewState(money)
	s.Candidates = staff.NewRoster(helpers.StaffMember("eng", staff.RoleEngineer, 150))
	return s
}

func TestDispatchAction_AppliedActionPublishesAndJournals(t *testing.T) {
	// Arrange
	store := studio.NewMemoryStore(shared.NewSessionID(), stateWithCandidate(1000))
	publisher := helpers.NewRecordingPublisher()
	ledger := helpers.NewMockMediator()
	ledger.SetSendFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return &ledgerCmd.RecordTransactionResponse{}, nil
	})
	handler := commands.NewDispatchActionHandler(store, publisher, ledger)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.DispatchActionCommand{Action: game.HireStaff{CandidateID: "eng"}})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.DispatchActionResponse)
	assert.False(t, result.Rejected)
	assert.False(t, result.IsRejected())
	assert.Equal(t, 700, result.State.Money)
	assert.Same(t, result.State, store.Snapshot())
	assert.Equal(t, []notification.Kind{notification.KindStaffHired}, publisher.Kinds())

	requests := ledger.Requests()
	require.Len(t, requests, 1)
	record := requests[0].(*ledgerCmd.RecordTransactionCommand)
	assert.Equal(t, store.SessionID().String(), record.SessionID)
	assert.Equal(t, "SIGNING_FEE", record.TransactionType)
	assert.Equal(t, -300, record.Amount)
	assert.Equal(t, 1000, record.BalanceBefore)
	assert.Equal(t, 700, record.BalanceAfter)
	assert.Equal(t, 1, record.Day)
}

func TestDispatchAction_RejectedActionLeavesStateAndPublishesError(t *testing.T) {
	// Arrange
	initial := stateWithCandidate(100)
	store := studio.NewMemoryStore(shared.NewSessionID(), initial)
	publisher := helpers.NewRecordingPublisher()
	ledger := helpers.NewMockMediator()
	handler := commands.NewDispatchActionHandler(store, publisher, ledger)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.DispatchActionCommand{Action: game.HireStaff{CandidateID: "eng"}})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.DispatchActionResponse)
	assert.True(t, result.Rejected)
	var funds *shared.InsufficientFundsError
	assert.True(t, errors.As(result.Reason, &funds))
	require.Len(t, result.Events, 1)
	assert.Equal(t, notification.KindInsufficientFunds, result.Events[0].Kind)
	assert.Same(t, initial, store.Snapshot())
	assert.Zero(t, store.Version())
	assert.Equal(t, []notification.Kind{notification.KindInsufficientFunds}, publisher.Kinds())
	assert.Empty(t, ledger.Requests())
}

func TestDispatchAction_WithoutLedgerSkipsJournal(t *testing.T) {
	store := studio.NewMemoryStore(shared.NewSessionID(), stateWithCandidate(1000))
	handler := commands.NewDispatchActionHandler(store, nil, nil)

	resp, err := handler.Handle(context.Background(), &commands.DispatchActionCommand{Action: game.HireStaff{CandidateID: "eng"}})

	require.NoError(t, err)
	assert.Len(t, resp.(*commands.DispatchActionResponse).Movements, 1)
}

func TestDispatchAction_PublisherFailureIsReturned(t *testing.T) {
	store := studio.NewMemoryStore(shared.NewSessionID(), stateWithCandidate(1000))
	publisher := helpers.NewRecordingPublisher()
	publisher.Err = errors.New("journal offline")
	handler := commands.NewDispatchActionHandler(store, publisher, nil)

	_, err := handler.Handle(context.Background(), &commands.DispatchActionCommand{Action: game.HireStaff{CandidateID: "eng"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal offline")
}

func TestDispatchAction_RequiresAnAction(t *testing.T) {
	handler := commands.NewDispatchActionHandler(studio.NewMemoryStore(shared.NewSessionID(), helpers.NewState(0)), nil, nil)

	_, err := handler.Handle(context.Background(), &commands.DispatchActionCommand{})

	assert.Error(t, err)
}

type runnerFunc func(ctx context.Context, t minigame.Type, difficulty int) (int, error)

func (f runnerFunc) Run(ctx context.Context, t minigame.Type, difficulty int) (int, error) {
	return f(ctx, t, difficulty)
}

func mixingSession(t *testing.T) *studio.MemoryStore {
	t.Helper()
	s := helpers.NewState(1000)
	p := helpers.Project("demo", "rock", helpers.StageSpec{Name: "Mixing", Required: 30, Trigger: string(minigame.TypeMixingBoard)})
	active, err := p.Activate(1)
	require.NoError(t, err)
	s.ActiveProject = &active
	return studio.NewMemoryStore(shared.NewSessionID(), s)
}

func TestPlayMinigame_OpensPlaysAndCompletes(t *testing.T) {
	// Arrange
	store := mixingSession(t)
	dispatch := commands.NewDispatchActionHandler(store, nil, nil)
	var played minigame.Type
	handler := commands.NewPlayMinigameHandler(store, dispatch, runnerFunc(func(ctx context.Context, mt minigame.Type, difficulty int) (int, error) {
		played = mt
		return 75, nil
	}))

	// Act
	resp, err := handler.Handle(context.Background(), &commands.PlayMinigameCommand{})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.PlayMinigameResponse)
	assert.Equal(t, minigame.TypeMixingBoard, played)
	assert.Equal(t, minigame.TypeMixingBoard, result.Type)
	assert.Equal(t, 75, result.Score)
	require.NotNil(t, result.Result)
	assert.False(t, result.Result.Rejected)
	_, pending := store.Snapshot().Minigames.Pending()
	assert.False(t, pending)
}

func TestPlayMinigame_RunnerFailureDismissesTheOffer(t *testing.T) {
	store := mixingSession(t)
	dispatch := commands.NewDispatchActionHandler(store, nil, nil)
	handler := commands.NewPlayMinigameHandler(store, dispatch, runnerFunc(func(ctx context.Context, mt minigame.Type, difficulty int) (int, error) {
		return 0, errors.New("player quit")
	}))

	_, err := handler.Handle(context.Background(), &commands.PlayMinigameCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "player quit")
	_, pending := store.Snapshot().Minigames.Pending()
	assert.False(t, pending)
}

func TestPlayMinigame_WithoutProjectIsRejected(t *testing.T) {
	store := studio.NewMemoryStore(shared.NewSessionID(), helpers.NewState(1000))
	dispatch := commands.NewDispatchActionHandler(store, nil, nil)
	handler := commands.NewPlayMinigameHandler(store, dispatch, runnerFunc(func(context.Context, minigame.Type, int) (int, error) {
		t.Fatal("runner must not be called")
		return 0, nil
	}))

	resp, err := handler.Handle(context.Background(), &commands.PlayMinigameCommand{})

	require.NoError(t, err)
	result := resp.(*commands.PlayMinigameResponse)
	require.NotNil(t, result.Result)
	assert.True(t, result.Result.Rejected)
}
