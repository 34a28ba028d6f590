package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/studiosim-go/internal/adapters/persistence"
	"github.com/andrescamacho/studiosim-go/internal/application/ledger/queries"
	"github.com/andrescamacho/studiosim-go/internal/infrastructure/database"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Financial ledger operations",
		Long: `View and analyze a session's financial journal.

The ledger holds every money movement of a session: signing fees, training
costs, equipment purchases, salaries and project payouts. Days are in-game
days.

Examples:
  studiosim ledger list
  studiosim ledger list --category STAFF_COSTS --limit 20
  studiosim ledger list --session 3f0c... --from-day 1 --to-day 7
  studiosim ledger summary --from-day 1 --to-day 14`,
	}

	// Add subcommands
	cmd.AddCommand(newLedgerListCommand())
	cmd.AddCommand(newLedgerSummaryCommand())
	cmd.AddCommand(newLedgerCashFlowCommand())

	return cmd
}

// newLedgerListCommand creates the ledger list subcommand
func newLedgerListCommand() *cobra.Command {
	var (
		fromDay  int
		toDay    int
		category string
		txType   string
		limit    int
		offset   int
		orderBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List a session's transactions with optional filtering.

Categories:
  STAFF_COSTS         - Signing fees and salaries
  STAFF_DEVELOPMENT   - Training courses
  STUDIO_INVESTMENTS  - Equipment purchases
  PROJECT_REVENUE     - Project payouts

Transaction Types:
  SIGNING_FEE, TRAINING, EQUIPMENT, SALARIES, PROJECT_PAYOUT

Examples:
  studiosim ledger list --limit 10
  studiosim ledger list --type SALARIES
  studiosim ledger list --from-day 3 --to-day 9 --order-by "day ASC"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &queries.GetTransactionsQuery{
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			}
			if cmd.Flags().Changed("from-day") {
				query.FromDay = &fromDay
			}
			if cmd.Flags().Changed("to-day") {
				query.ToDay = &toDay
			}
			if category != "" {
				query.Category = &category
			}
			if txType != "" {
				query.TransactionType = &txType
			}
			return runLedgerList(cmd.Context(), query)
		},
	}

	cmd.Flags().IntVar(&fromDay, "from-day", 0, "First in-game day (inclusive)")
	cmd.Flags().IntVar(&toDay, "to-day", 0, "Last in-game day (inclusive)")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by transaction type")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of transactions to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of transactions to skip")
	cmd.Flags().StringVar(&orderBy, "order-by", "day DESC", "Sort order")

	return cmd
}

// newLedgerSummaryCommand creates the profit & loss subcommand
func newLedgerSummaryCommand() *cobra.Command {
	var (
		fromDay int
		toDay   int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate profit & loss statement",
		Long: `Generate a profit & loss (P&L) statement for a range of days.

The P&L statement shows:
- Total revenue by category
- Total expenses by category
- Net profit (revenue - expenses)

Omitted bounds are open, so with no flags the whole session is summarised.

Example:
  studiosim ledger summary --from-day 1 --to-day 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfitLoss(cmd.Context(), fromDay, toDay)
		},
	}

	cmd.Flags().IntVar(&fromDay, "from-day", 0, "First in-game day (inclusive)")
	cmd.Flags().IntVar(&toDay, "to-day", 0, "Last in-game day (inclusive)")

	return cmd
}

// newLedgerCashFlowCommand creates the cash flow subcommand
func newLedgerCashFlowCommand() *cobra.Command {
	var (
		fromDay int
		toDay   int
		groupBy string
	)

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Show money in and out grouped by category or day",
		Long: `Show a cash flow statement for the session.

Each row lists inflow, outflow, net flow and the number of transactions
for one category (default) or one in-game day.

Examples:
  studiosim ledger cashflow
  studiosim ledger cashflow --group-by day --from-day 1 --to-day 14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCashFlow(cmd.Context(), &queries.GetCashFlowQuery{
				FromDay: fromDay,
				ToDay:   toDay,
				GroupBy: groupBy,
			})
		},
	}

	cmd.Flags().IntVar(&fromDay, "from-day", 0, "First in-game day (inclusive)")
	cmd.Flags().IntVar(&toDay, "to-day", 0, "Last in-game day (inclusive)")
	cmd.Flags().StringVar(&groupBy, "group-by", queries.GroupByCategory, "Grouping: category or day")

	return cmd
}

// runLedgerList executes the ledger list command
func runLedgerList(ctx context.Context, query *queries.GetTransactionsQuery) error {
	sid, err := resolveSessionID()
	if err != nil {
		return err
	}
	query.SessionID = sid.String()

	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	handler := queries.NewGetTransactionsHandler(persistence.NewGormTransactionRepository(db))
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := handler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}

	displayTransactionList(sid.String(), result.(*queries.GetTransactionsResponse))
	return nil
}

// runProfitLoss executes the profit & loss command
func runProfitLoss(ctx context.Context, fromDay, toDay int) error {
	if fromDay > 0 && toDay > 0 && fromDay > toDay {
		return fmt.Errorf("--from-day must not be after --to-day")
	}

	sid, err := resolveSessionID()
	if err != nil {
		return err
	}

	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	handler := queries.NewGetProfitLossHandler(persistence.NewGormTransactionRepository(db))
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := handler.Handle(ctx, &queries.GetProfitLossQuery{
		SessionID: sid.String(),
		FromDay:   fromDay,
		ToDay:     toDay,
	})
	if err != nil {
		return fmt.Errorf("failed to generate P&L report: %w", err)
	}

	displayProfitLoss(result.(*queries.GetProfitLossResponse))
	return nil
}

// runCashFlow executes the cash flow command
func runCashFlow(ctx context.Context, query *queries.GetCashFlowQuery) error {
	sid, err := resolveSessionID()
	if err != nil {
		return err
	}
	query.SessionID = sid.String()

	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	handler := queries.NewGetCashFlowHandler(persistence.NewGormTransactionRepository(db))
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := handler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to generate cash flow report: %w", err)
	}

	displayCashFlow(result.(*queries.GetCashFlowResponse))
	return nil
}

// displayTransactionList formats and displays the transaction list
func displayTransactionList(session string, response *queries.GetTransactionsResponse) {
	fmt.Printf("\nTRANSACTIONS (session %s)\n", session)
	fmt.Println(rule)

	if len(response.Transactions) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Day\tType\tCategory\tAmount\tBalance\tDescription")
	fmt.Fprintln(w, "───\t────\t────────\t──────\t───────\t───────────")

	for _, tx := range response.Transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			tx.Day,
			tx.Type,
			tx.Category,
			formatAmount(tx.Amount),
			formatMoney(tx.BalanceAfter),
			tx.Description,
		)
	}

	w.Flush()
	fmt.Println(rule)
	fmt.Printf("Total: %d transactions\n\n", response.Total)
}

// displayProfitLoss formats and displays the P&L statement
func displayProfitLoss(response *queries.GetProfitLossResponse) {
	fmt.Printf("\nPROFIT & LOSS STATEMENT\n")
	fmt.Printf("Period: %s\n", response.Period)
	fmt.Println(rule)

	fmt.Println("\nREVENUE")
	for _, category := range sortedKeys(response.RevenueBreakdown) {
		fmt.Printf("  %-25s %s\n", category+":", formatMoney(response.RevenueBreakdown[category]))
	}
	fmt.Println("                          ─────────────")
	fmt.Printf("  %-25s %s\n", "Total Revenue:", formatMoney(response.TotalRevenue))

	fmt.Println("\nEXPENSES")
	for _, category := range sortedKeys(response.ExpenseBreakdown) {
		fmt.Printf("  %-25s %s\n", category+":", formatMoney(-response.ExpenseBreakdown[category]))
	}
	fmt.Println("                          ─────────────")
	fmt.Printf("  %-25s %s\n", "Total Expenses:", formatMoney(-response.TotalExpenses))

	fmt.Println("\n" + rule)
	fmt.Printf("NET PROFIT:               %s\n", formatAmount(response.NetProfit))
	fmt.Println(rule)
}

// displayCashFlow formats and displays the cash flow statement
func displayCashFlow(response *queries.GetCashFlowResponse) {
	fmt.Printf("\nCASH FLOW BY %s\n", strings.ToUpper(response.GroupBy))
	fmt.Printf("Period: %s\n", response.Period)
	fmt.Println(rule)

	if len(response.Groups) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	header := "Category"
	if response.GroupBy == queries.GroupByDay {
		header = "Day"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tInflow\tOutflow\tNet\tCount\n", header)
	fmt.Fprintln(w, "─────\t──────\t───────\t───\t─────")
	for _, g := range response.Groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			g.Key,
			formatMoney(g.TotalInflow),
			formatMoney(g.TotalOutflow),
			formatAmount(g.NetFlow),
			g.Transactions,
		)
	}
	w.Flush()
	fmt.Println(rule)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
