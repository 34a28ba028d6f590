package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/studiosim-go/internal/adapters/generator"
	"github.com/andrescamacho/studiosim-go/internal/adapters/metrics"
	"github.com/andrescamacho/studiosim-go/internal/adapters/notify"
	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	applogging "github.com/andrescamacho/studiosim-go/internal/application/logging"
	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	"github.com/andrescamacho/studiosim-go/internal/application/setup"
	"github.com/andrescamacho/studiosim-go/internal/application/studio"
	studioCommands "github.com/andrescamacho/studiosim-go/internal/application/studio/commands"
	"github.com/andrescamacho/studiosim-go/internal/domain/focus"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/catalog"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/database"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/logging"
)

// sessionOptions tune how a session is bootstrapped
type sessionOptions struct {
	Seed    int64
	Runner  minigame.Runner
	Console io.Writer // nil keeps notifications off the terminal
}

// session is one fully wired studio: store, journals, metrics and mediator.
type session struct {
	id        shared.SessionID
	cfg       *config.Config
	logger    *logging.SlogLogger
	store     *studio.MemoryStore
	mediator  mediator.Mediator
	financial *metrics.FinancialMetricsCollector

	db        *gorm.DB
	logCloser io.Closer
	server    *metrics.Server
}

// openSession builds a new session from configuration and seeds its first
// project and candidate offers.
func openSession(ctx context.Context, cfg *config.Config, opts sessionOptions) (*session, error) {
	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	s := &session{cfg: cfg, logger: logger, logCloser: logCloser}

	s.db, err = database.NewConnection(&cfg.Database)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(s.db); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	cat, err := catalog.Load(cfg.Game.CatalogPath)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	alloc := focus.Balanced()
	if !cfg.Game.StartingFocus.IsZero() {
		alloc, err = focus.NewAllocation(cfg.Game.StartingFocus.Performance, cfg.Game.StartingFocus.SoundCapture, cfg.Game.StartingFocus.Layering)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("invalid starting focus: %w", err)
		}
	}

	s.id = shared.NewSessionID()
	s.store = studio.NewMemoryStore(s.id, game.NewState(game.Setup{
		Money:      cfg.Game.StartingMoney,
		Reputation: cfg.Game.StartingReputation,
		Focus:      alloc,
		Catalog:    cat,
		Rules: game.Rules{
			SigningFeeMultiplier: cfg.Game.SigningFeeMultiplier,
			SalaryIntervalDays:   cfg.Game.SalaryIntervalDays,
		},
	}))

	publishers := notify.Fanout{
		notify.NewJournalPublisher(persistence.NewGormNotificationRepository(s.db, nil), s.id),
		notify.NewLogPublisher(logger),
	}
	if opts.Console != nil {
		publishers = append(publishers, notify.NewConsolePublisher(opts.Console))
	}

	middleware := []mediator.Middleware{applogging.Middleware(logger)}
	if cfg.Metrics.Enabled {
		mw, err := s.initMetrics()
		if err != nil {
			s.Close()
			return nil, err
		}
		middleware = append(middleware, mw)
	}

	registry := setup.NewHandlerRegistry(
		persistence.NewGormTransactionRepository(s.db),
		nil,
		s.store,
		publishers,
		opts.Runner,
	)
	s.mediator, err = registry.CreateConfiguredMediator(middleware...)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to configure mediator: %w", err)
	}

	if cfg.Metrics.Enabled {
		s.financial = metrics.NewFinancialMetricsCollector(s.mediator)
		if err := s.financial.Register(); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to register financial metrics: %w", err)
		}
		metrics.SetGlobalFinancialCollector(s.financial)
		if err := s.serveMetrics(); err != nil {
			s.Close()
			return nil, err
		}
	}

	if err := s.seedOffers(ctx, opts.Seed); err != nil {
		s.Close()
		return nil, err
	}

	logger.Log("INFO", "session opened", map[string]interface{}{
		"session_id": s.id.String(),
		"money":      cfg.Game.StartingMoney,
		"seed":       opts.Seed,
	})
	return s, nil
}

func (s *session) initMetrics() (mediator.Middleware, error) {
	metrics.InitRegistry()

	commands := metrics.NewCommandMetricsCollector()
	if err := commands.Register(); err != nil {
		return nil, fmt.Errorf("failed to register command metrics: %w", err)
	}
	studioCollector := metrics.NewStudioMetricsCollector()
	if err := studioCollector.Register(); err != nil {
		return nil, fmt.Errorf("failed to register studio metrics: %w", err)
	}
	metrics.SetGlobalStudioCollector(studioCollector)

	return metrics.PrometheusMiddleware(commands), nil
}

// serveMetrics exposes the registry when a port is configured
func (s *session) serveMetrics() error {
	if !s.cfg.Metrics.Serves() {
		return nil
	}
	addr := s.cfg.Metrics.Address()
	srv, err := metrics.NewServer(addr, s.cfg.Metrics.Path)
	if err != nil {
		return fmt.Errorf("failed to create metrics server: %w", err)
	}
	errCh, err := srv.Start()
	if err != nil {
		return err
	}
	s.server = srv

	go func() {
		for err := range errCh {
			s.logger.Log("ERROR", "metrics server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()
	s.logger.Log("INFO", "serving metrics", map[string]interface{}{"url": s.cfg.Metrics.URL()})
	return nil
}

// seedOffers fills the project board and the candidate pool
func (s *session) seedOffers(ctx context.Context, seed int64) error {
	gen := generator.New(seed)

	projects, err := gen.Projects(s.cfg.Game.ProjectPoolSize)
	if err != nil {
		return fmt.Errorf("failed to generate projects: %w", err)
	}
	offers := []game.Action{
		game.OfferProjects{Projects: projects},
		game.OfferCandidates{Candidates: gen.Candidates(s.cfg.Game.CandidatePoolSize)},
	}
	for _, action := range offers {
		resp, err := s.mediator.Send(ctx, &studioCommands.DispatchActionCommand{Action: action})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", action.Name(), err)
		}
		if r := resp.(*studioCommands.DispatchActionResponse); r.Rejected {
			return fmt.Errorf("failed to seed %s: %w", action.Name(), r.Reason)
		}
	}
	return nil
}

// Close releases the session's resources. It is safe on a half-built session.
func (s *session) Close() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = s.server.Stop(shutdownCtx)
		cancel()
	}
	if s.db != nil {
		_ = database.Close(s.db)
	}
	if s.logCloser != nil {
		_ = s.logCloser.Close()
	}
}
