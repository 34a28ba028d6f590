package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/adapters/metrics"
	"github.com/andrescamacho/studiosim-go/internal/adapters/script"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Type = "sqlite"
	cfg.Database.Path = ":memory:"
	config.SetDefaults(cfg)
	cfg.Logging.Level = "error"
	return cfg
}

func TestRootCommand_RegistersCommandGroups(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"play", "catalog", "ledger", "notifications", "config"}, names)
}

func TestLedgerCommand_Subcommands(t *testing.T) {
	ledger := NewLedgerCommand()

	var names []string
	for _, c := range ledger.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"list", "summary", "cashflow"}, names)

	cashflow, _, err := ledger.Find([]string{"cashflow"})
	require.NoError(t, err)
	assert.Equal(t, "category", cashflow.Flags().Lookup("group-by").DefValue)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$1,234,567", formatMoney(1234567))
	assert.Equal(t, "-$950", formatMoney(-950))
	assert.Equal(t, "+$1,000", formatAmount(1000))
	assert.Equal(t, "-$12", formatAmount(-12))
	assert.Equal(t, "postgres://studio:****@db:5432/sim", maskPassword("postgres://studio:secret@db:5432/sim"))
	assert.Equal(t, "studiosim.db", maskPassword("studiosim.db"))
}

func TestOpenSession_SeedsOffersAndPlays(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	cfg.Game.ProjectPoolSize = 2
	cfg.Game.CandidatePoolSize = 4
	ctx := context.Background()

	// Act
	sess, err := openSession(ctx, cfg, sessionOptions{Seed: 11, Runner: script.NewScoreRunner(script.MinigameScores{})})
	require.NoError(t, err)
	defer sess.Close()

	report, err := script.NewExecutor(sess.mediator).Run(ctx, script.Script{Steps: []script.Step{
		{Do: script.VerbHire},
		{Do: script.VerbStart},
	}})

	// Assert
	require.NoError(t, err)
	assert.Zero(t, report.Rejected)
	state := sess.store.Snapshot()
	assert.Equal(t, 1, state.Staff.Len())
	assert.Equal(t, 3, state.Candidates.Len())
	assert.NotNil(t, state.ActiveProject)
	assert.Len(t, state.AvailableProjects, 1)
	assert.Less(t, state.Money, cfg.Game.StartingMoney)
	assert.Nil(t, sess.financial)
}

func TestOpenSession_WithMetricsRegistersCollectors(t *testing.T) {
	// Arrange
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true
	t.Cleanup(func() {
		metrics.Registry = nil
		metrics.SetGlobalStudioCollector(nil)
		metrics.SetGlobalFinancialCollector(nil)
	})

	// Act
	sess, err := openSession(context.Background(), cfg, sessionOptions{Seed: 5})
	require.NoError(t, err)
	defer sess.Close()

	// Assert
	assert.True(t, metrics.IsEnabled())
	require.NotNil(t, sess.financial)
	assert.Nil(t, sess.server)
	require.NoError(t, sess.financial.RefreshProfitLoss(context.Background(), sess.id.String()))
}

func TestOpenSession_RejectsUnknownCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.CatalogPath = "/does/not/exist.yaml"

	_, err := openSession(context.Background(), cfg, sessionOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}
