package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/studiosim-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect StudioSim configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (STUDIO_* prefix, plus DATABASE_URL)
2. Config file (studiosim.yaml)
3. Default values

The last played session is remembered in ~/.studiosim/state.json

Examples:
  studiosim config show
  studiosim config show --config ./configs/studiosim.yaml`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user state: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			displayConfig(cfg, userCfg, userConfigHandler.GetConfigPath())
			return nil
		},
	}
}

func displayConfig(cfg *config.Config, userCfg *config.UserConfig, statePath string) {
	fmt.Println("StudioSim Configuration")
	fmt.Println("=======================")

	fmt.Println("User State:")
	fmt.Printf("  State file:       %s\n", statePath)
	if userCfg.LastSessionID != "" {
		fmt.Printf("  Last Session:     %s (day %d)\n", userCfg.LastSessionID, userCfg.LastPlayedDay)
	} else {
		fmt.Printf("  Last Session:     (none)\n")
	}

	fmt.Println("\nDatabase:")
	fmt.Printf("  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
	case cfg.Database.Type == config.DriverSQLite:
		fmt.Printf("  Path:             %s\n", cfg.Database.DSN())
		if cfg.Database.IsInMemory() {
			fmt.Println("                    (in memory: the journal is lost when play exits)")
		}
	default:
		fmt.Printf("  Host:             %s\n", cfg.Database.Host)
		fmt.Printf("  Port:             %d\n", cfg.Database.Port)
		fmt.Printf("  Database:         %s\n", cfg.Database.Name)
		fmt.Printf("  User:             %s\n", cfg.Database.User)
	}
	fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

	fmt.Println("\nGame:")
	fmt.Printf("  Starting Money:   %s\n", formatMoney(cfg.Game.StartingMoney))
	fmt.Printf("  Reputation:       %d\n", cfg.Game.StartingReputation)
	fmt.Printf("  Signing Fee:      %dx salary\n", cfg.Game.SigningFeeMultiplier)
	fmt.Printf("  Salaries:         every %d days\n", cfg.Game.SalaryIntervalDays)
	fmt.Printf("  Offer Pools:      %d candidates, %d projects\n", cfg.Game.CandidatePoolSize, cfg.Game.ProjectPoolSize)
	fmt.Printf("  Starting Focus:   %d/%d/%d\n",
		cfg.Game.StartingFocus.Performance, cfg.Game.StartingFocus.SoundCapture, cfg.Game.StartingFocus.Layering)
	if cfg.Game.Seed != 0 {
		fmt.Printf("  Seed:             %d\n", cfg.Game.Seed)
	}
	if cfg.Game.CatalogPath != "" {
		fmt.Printf("  Catalog:          %s\n", cfg.Game.CatalogPath)
	} else {
		fmt.Printf("  Catalog:          (built-in)\n")
	}

	fmt.Println("\nMetrics:")
	fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
	if cfg.Metrics.Serves() {
		fmt.Printf("  Endpoint:         %s\n", cfg.Metrics.URL())
	}

	fmt.Println("\nLogging:")
	fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
	fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
	fmt.Printf("  Output:           %s\n", cfg.Logging.Output)
	if cfg.Logging.FilePath != "" {
		fmt.Printf("  File:             %s\n", cfg.Logging.FilePath)
	}
}
