package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/studiosim-go/internal/adapters/notify"
	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	ledgerQueries "github.com/andrescamacho/studiosim-go/internal/application/ledger/queries"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/setup"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	studioCommands "github.com/andrescamacho/studiosim-go/internal/application/studio/commands"
	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/project"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/test/helpers"
)

// sessionContext drives a session through the mediator with the ledger and
// the notification journal backed by the shared test database.
type sessionContext struct {
	store    *studio.MemoryStore
	mediator mediator.Mediator
	journal  *persistence.GormNotificationRepository
	last     *studioCommands.DispatchActionResponse
}

func (sc *sessionContext) reset() error {
	sc.store = nil
	sc.mediator = nil
	sc.last = nil
	sc.journal = nil
	return helpers.TruncateAllTables()
}

func (sc *sessionContext) dispatch(action game.Action) error {
	resp, err := sc.mediator.Send(context.Background(), &studioCommands.DispatchActionCommand{Action: action})
	if err != nil {
		return err
	}
	sc.last = resp.(*studioCommands.DispatchActionResponse)
	return nil
}

// Given steps

func (sc *sessionContext) aJournaledSessionWith(money int) error {
	db := helpers.SharedTestDB
	sessionID := shared.NewSessionID()
	sc.store = studio.NewMemoryStore(sessionID, game.NewState(game.Setup{
		Money:   money,
		Catalog: catalog.Default(),
		Rules:   game.DefaultRules(),
	}))
	sc.journal = persistence.NewGormNotificationRepository(db, nil)

	registry := setup.NewHandlerRegistry(
		persistence.NewGormTransactionRepository(db),
		nil,
		sc.store,
		notify.NewJournalPublisher(sc.journal, sessionID),
		nil,
	)
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return err
	}
	sc.mediator = m
	return nil
}

func (sc *sessionContext) theSessionOffersCandidates(table *godog.Table) error {
	members, err := membersFromTable(table)
	if err != nil {
		return err
	}
	return sc.dispatch(game.OfferCandidates{Candidates: members})
}

func (sc *sessionContext) theSessionOffersProjectInGenreWithStages(id, genre string, table *godog.Table) error {
	p, err := projectFromTable(id, genre, table)
	if err != nil {
		return err
	}
	return sc.dispatch(game.OfferProjects{Projects: []project.Project{p}})
}

// When steps

func (sc *sessionContext) theSessionHires(id string) error {
	return sc.dispatch(game.HireStaff{CandidateID: id})
}

func (sc *sessionContext) theSessionSendsToTraining(id, course string) error {
	return sc.dispatch(game.SendStaffToTraining{StaffID: id, CourseID: course})
}

func (sc *sessionContext) theSessionAdvancesDays(days int) error {
	for i := 0; i < days; i++ {
		if err := sc.dispatch(game.AdvanceDay{}); err != nil {
			return err
		}
	}
	return nil
}

// Then steps

func (sc *sessionContext) transactions() (*ledgerQueries.GetTransactionsResponse, error) {
	resp, err := sc.mediator.Send(context.Background(), &ledgerQueries.GetTransactionsQuery{
		SessionID: sc.store.SessionID().String(),
		OrderBy:   "day ASC",
	})
	if err != nil {
		return nil, err
	}
	return resp.(*ledgerQueries.GetTransactionsResponse), nil
}

func (sc *sessionContext) theLedgerShouldHoldTransactions(n int) error {
	list, err := sc.transactions()
	if err != nil {
		return err
	}
	if list.Total != n {
		return fmt.Errorf("expected %d transactions, got %d", n, list.Total)
	}
	return nil
}

func (sc *sessionContext) theLedgerShouldContainAOf(txType string, amount int) error {
	list, err := sc.transactions()
	if err != nil {
		return err
	}
	for _, tx := range list.Transactions {
		if tx.Type == txType && tx.Amount == amount {
			return nil
		}
	}
	return fmt.Errorf("no %s transaction of %d among %d transactions", txType, amount, list.Total)
}

func (sc *sessionContext) theLedgerEntriesShouldMatchTheStudioBalance() error {
	list, err := sc.transactions()
	if err != nil {
		return err
	}
	if len(list.Transactions) == 0 {
		return fmt.Errorf("ledger is empty")
	}
	lastEntry := list.Transactions[len(list.Transactions)-1]
	if money := sc.store.Snapshot().Money; lastEntry.BalanceAfter != money {
		return fmt.Errorf("ledger balance %d does not match studio money %d", lastEntry.BalanceAfter, money)
	}
	return nil
}

func (sc *sessionContext) theProfitAndLossShouldShowExpensesOf(expenses int) error {
	resp, err := sc.mediator.Send(context.Background(), &ledgerQueries.GetProfitLossQuery{SessionID: sc.store.SessionID().String()})
	if err != nil {
		return err
	}
	pl := resp.(*ledgerQueries.GetProfitLossResponse)
	if pl.TotalExpenses != expenses {
		return fmt.Errorf("expected expenses of %d, got %d", expenses, pl.TotalExpenses)
	}
	if pl.NetProfit != pl.TotalRevenue-pl.TotalExpenses {
		return fmt.Errorf("net profit %d does not equal revenue minus expenses", pl.NetProfit)
	}
	return nil
}

func (sc *sessionContext) theLastActionShouldBeRejected() error {
	if sc.last == nil || !sc.last.Rejected {
		return fmt.Errorf("expected the last action to be rejected")
	}
	return nil
}

func (sc *sessionContext) theJournalShouldContainANotification(kind string) error {
	k := notification.Kind(kind)
	events, err := sc.journal.List(context.Background(), sc.store.SessionID(), &k, 0, 0)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("no %s notification journaled", kind)
	}
	return nil
}

// InitializeSessionScenario registers the application-level step definitions
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	sc := &sessionContext{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		return c, sc.reset()
	})

	// Given steps
	ctx.Step(`^a journaled session with \$(\d+)$`, sc.aJournaledSessionWith)
	ctx.Step(`^the session offers candidates:$`, sc.theSessionOffersCandidates)
	ctx.Step(`^the session offers project "([^"]*)" in genre "([^"]*)" with stages:$`, sc.theSessionOffersProjectInGenreWithStages)

	// When steps
	ctx.Step(`^the session hires "([^"]*)"$`, sc.theSessionHires)
	ctx.Step(`^the session sends "([^"]*)" to the "([^"]*)" course$`, sc.theSessionSendsToTraining)
	ctx.Step(`^the session advances (\d+) days?$`, sc.theSessionAdvancesDays)

	// Then steps
	ctx.Step(`^the ledger should hold (\d+) transactions?$`, sc.theLedgerShouldHoldTransactions)
	ctx.Step(`^the ledger should contain a "([^"]*)" of (-?\d+)$`, sc.theLedgerShouldContainAOf)
	ctx.Step(`^the ledger balance should match the studio's money$`, sc.theLedgerEntriesShouldMatchTheStudioBalance)
	ctx.Step(`^the profit and loss should show expenses of (\d+)$`, sc.theProfitAndLossShouldShowExpensesOf)
	ctx.Step(`^the last action should be rejected$`, sc.theLastActionShouldBeRejected)
	ctx.Step(`^the journal should contain a "([^"]*)" notification$`, sc.theJournalShouldContainANotification)
}
