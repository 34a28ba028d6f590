package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	sessionID  string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studiosim",
		Short: "StudioSim - Run a music studio production simulation",
		Long: `StudioSim drives the studio simulation engine from the command line.

A session is played by a YAML script of player actions. Every money movement
is journaled to the ledger database and every notification to the session
journal, so past sessions can be inspected afterwards.

Examples:
  studiosim play --script scripts/first-week.yaml
  studiosim play --script scripts/first-week.yaml --seed 42
  studiosim catalog equipment
  studiosim ledger list --limit 20
  studiosim ledger summary --from-day 1 --to-day 7
  studiosim notifications --kind ProjectCompleted
  studiosim config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./studiosim.yaml, ./configs, /etc/studiosim)")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", "",
		"Session ID (defaults to the last played session)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewNotificationsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
