package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/studiosim-go/internal/adapters/script"
	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
)

// NewPlayCommand creates the play command
func NewPlayCommand() *cobra.Command {
	var (
		scriptPath string
		seed       int64
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a session from a script",
		Long: `Start a new studio session and play it from a YAML script.

The session is seeded with a generated project board and candidate pool.
Each script step becomes one or more player actions. Rejected actions are
reported and the script carries on. Minigames are resolved with the scores
listed under "minigames" in the script.

Script example:
  name: first week
  minigames:
    default: 70
  steps:
    - do: hire
      target: best
    - do: start
    - do: assign
      target: all
    - do: recommended_focus
    - do: finish

Seed priority: --seed > script seed > game.seed from config (0 = random).

Examples:
  studiosim play --script scripts/first-week.yaml
  studiosim play --script scripts/first-week.yaml --seed 42 --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := script.Load(scriptPath)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			effectiveSeed := cfg.Game.Seed
			if sc.Seed != 0 {
				effectiveSeed = sc.Seed
			}
			if cmd.Flags().Changed("seed") {
				effectiveSeed = seed
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPlay(ctx, cfg, sc, effectiveSeed, quiet)
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to the session script [required]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for generated offers")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the final summary")
	cmd.MarkFlagRequired("script")

	return cmd
}

func runPlay(ctx context.Context, cfg *config.Config, sc script.Script, seed int64, quiet bool) error {
	runner := script.NewScoreRunner(sc.Minigames)
	opts := sessionOptions{Seed: seed, Runner: runner}
	if !quiet {
		opts.Console = os.Stdout
	}

	sess, err := openSession(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	if sc.Name != "" {
		fmt.Printf("Playing %q (session %s)\n", sc.Name, sess.id)
	} else {
		fmt.Printf("Playing session %s\n", sess.id)
	}
	fmt.Println(rule)

	executor := script.NewExecutor(sess.mediator)
	if verbose {
		executor.OnResult = func(r script.StepResult) {
			if r.Rejected {
				fmt.Printf("  step %d: %s rejected: %s\n", r.Step, r.Action, r.Reason)
				return
			}
			fmt.Printf("  step %d: %s\n", r.Step, r.Action)
		}
	}

	report, runErr := executor.Run(ctx, sc)

	final := sess.store.Snapshot()
	if err := rememberSession(sess.id.String(), final.Day); err != nil {
		sess.logger.Log("WARN", "failed to remember session", map[string]interface{}{"error": err.Error()})
	}
	if sess.financial != nil {
		if err := sess.financial.RefreshProfitLoss(ctx, sess.id.String()); err != nil {
			sess.logger.Log("WARN", "failed to refresh profit metrics", map[string]interface{}{"error": err.Error()})
		}
	}

	displaySummary(report, final)
	if runErr != nil {
		return fmt.Errorf("script stopped: %w", runErr)
	}
	return nil
}

func rememberSession(id string, day int) error {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return err
	}
	return handler.RememberSession(id, day)
}

func displaySummary(report *script.Report, s *game.State) {
	fmt.Println(rule)
	fmt.Println("SESSION SUMMARY")
	fmt.Printf("  Day:              %d\n", s.Day)
	fmt.Printf("  Money:            %s\n", formatMoney(s.Money))
	fmt.Printf("  Reputation:       %d\n", s.Reputation)
	fmt.Printf("  Player Level:     %d (%d/%d XP)\n", s.Player.Level, s.Player.XP, s.Player.XPToNextLevel)
	fmt.Printf("  Staff:            %d\n", s.Staff.Len())
	if report != nil {
		fmt.Printf("  Actions:          %d applied, %d rejected\n", report.Applied, report.Rejected)
	}

	if s.ActiveProject != nil {
		fmt.Printf("  Active Project:   %s (stage %d/%d)\n",
			s.ActiveProject.Name, s.ActiveProject.CurrentStageIndex+1, len(s.ActiveProject.Stages))
	}
	if len(s.CompletedProjects) > 0 {
		fmt.Println("\nCOMPLETED PROJECTS")
		for _, p := range s.CompletedProjects {
			fmt.Printf("  %-28s %-10s quality %.1f  efficiency %.1f\n", p.Name, p.Genre, p.QualityScore, p.EfficiencyScore)
		}
	}
	fmt.Println(rule)
}
