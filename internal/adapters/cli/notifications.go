package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/studiosim-go/internal/adapters/notify"
	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/database"
)

// NewNotificationsCommand creates the notifications command
func NewNotificationsCommand() *cobra.Command {
	var (
		kind   string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show a session's notification journal",
		Long: `Show the notifications a session produced, oldest first.

Examples:
  studiosim notifications
  studiosim notifications --kind LevelUp
  studiosim notifications --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := resolveSessionID()
			if err != nil {
				return err
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer database.Close(db)

			var filter *notification.Kind
			if kind != "" {
				k := notification.Kind(kind)
				filter = &k
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			repo := persistence.NewGormNotificationRepository(db, nil)
			events, err := repo.List(ctx, sid, filter, limit, offset)
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			fmt.Printf("\nNOTIFICATIONS (session %s)\n", sid)
			fmt.Println(rule)
			if len(events) == 0 {
				fmt.Println("No notifications found.")
				return nil
			}
			for _, e := range events {
				fmt.Println(notify.Format(e))
			}
			fmt.Println(rule)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by notification kind (e.g. ProjectCompleted)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of notifications (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of notifications to skip")

	return cmd
}
