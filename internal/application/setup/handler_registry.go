package setup

import (
	"reflect"

	ledgerCommands "github.com/andrescamacho/studiosim-go/internal/application/ledger/commands"
	ledgerQueries "github.com/andrescamacho/studiosim-go/internal/application/ledger/queries"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	studioCommands "github.com/andrescamacho/studiosim-go/internal/application/studio/commands"
	studioQueries "github.com/andrescamacho/studiosim-go/internal/application/studio/queries"
	"github.com/andrescamacho/studiosim-go/internal/domain/ledger"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
	store           studio.Store
	publisher       notification.Publisher
	runner          minigame.Runner
}

// NewHandlerRegistry creates a new handler registry. transactionRepo may be
// nil, in which case money movements are not journaled. runner may be nil
// when no minigames will be played.
func NewHandlerRegistry(
	transactionRepo ledger.TransactionRepository,
	clock shared.Clock,
	store studio.Store,
	publisher notification.Publisher,
	runner minigame.Runner,
) *HandlerRegistry {
	clock = shared.OrRealClock(clock)

	return &HandlerRegistry{
		transactionRepo: transactionRepo,
		clock:           clock,
		store:           store,
		publisher:       publisher,
		runner:          runner,
	}
}

// RegisterLedgerHandlers registers all ledger command and query handlers with the mediator
//
// This method registers:
//   - RecordTransactionCommand → RecordTransactionHandler
//   - GetTransactionsQuery → GetTransactionsHandler
//   - GetProfitLossQuery → GetProfitLossHandler
//   - GetCashFlowQuery → GetCashFlowHandler
func (r *HandlerRegistry) RegisterLedgerHandlers(m mediator.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&ledgerCommands.RecordTransactionCommand{}),
		ledgerCommands.NewRecordTransactionHandler(r.transactionRepo, r.clock),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&ledgerQueries.GetTransactionsQuery{}),
		ledgerQueries.NewGetTransactionsHandler(r.transactionRepo),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&ledgerQueries.GetProfitLossQuery{}),
		ledgerQueries.NewGetProfitLossHandler(r.transactionRepo),
	); err != nil {
		return err
	}

	return m.Register(
		reflect.TypeOf(&ledgerQueries.GetCashFlowQuery{}),
		ledgerQueries.NewGetCashFlowHandler(r.transactionRepo),
	)
}

// RegisterStudioHandlers registers the action dispatcher, the minigame
// command and every studio read model.
//
// The dispatcher journals through m, so ledger handlers must be registered on
// the same mediator for movements to reach the ledger.
func (r *HandlerRegistry) RegisterStudioHandlers(m mediator.Mediator) error {
	var journal mediator.Mediator
	if r.transactionRepo != nil {
		journal = m
	}
	dispatch := studioCommands.NewDispatchActionHandler(r.store, r.publisher, journal)

	handlers := []struct {
		request mediator.Request
		handler mediator.RequestHandler
	}{
		{&studioCommands.DispatchActionCommand{}, dispatch},
		{&studioQueries.GetStateQuery{}, studioQueries.NewGetStateHandler(r.store)},
		{&studioQueries.RecommendFocusQuery{}, studioQueries.NewRecommendFocusHandler(r.store)},
		{&studioQueries.RankStaffQuery{}, studioQueries.NewRankStaffHandler(r.store)},
		{&studioQueries.MilestoneProgressQuery{}, studioQueries.NewMilestoneProgressHandler(r.store)},
		{&studioQueries.MinigameEligibilityQuery{}, studioQueries.NewMinigameEligibilityHandler(r.store)},
	}
	if r.runner != nil {
		handlers = append(handlers, struct {
			request mediator.Request
			handler mediator.RequestHandler
		}{&studioCommands.PlayMinigameCommand{}, studioCommands.NewPlayMinigameHandler(r.store, dispatch, r.runner)})
	}

	for _, h := range handlers {
		if err := m.Register(reflect.TypeOf(h.request), h.handler); err != nil {
			return err
		}
	}
	return nil
}

// CreateConfiguredMediator creates a mediator with every handler registered.
// Middleware runs in the order given, the first one outermost.
func (r *HandlerRegistry) CreateConfiguredMediator(middleware ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, mw := range middleware {
		m.RegisterMiddleware(mw)
	}

	if r.transactionRepo != nil {
		if err := r.RegisterLedgerHandlers(m); err != nil {
			return nil, err
		}
	}
	if err := r.RegisterStudioHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
