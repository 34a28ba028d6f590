package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
	ledgerQueries "github.com/andrescamacho/studiosim-go/internal/application/ledger/queries"
)

// FinancialMetricsCollector handles ledger metrics (balance, transactions, P&L)
type FinancialMetricsCollector struct {
	mediator mediator.Mediator

	// Balance metrics
	moneyBalance *prometheus.GaugeVec

	// Transaction metrics
	transactionsTotal *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec

	// P&L metrics
	totalRevenue  *prometheus.GaugeVec
	totalExpenses *prometheus.GaugeVec
	netProfit     *prometheus.GaugeVec
}

// NewFinancialMetricsCollector creates a new financial metrics collector. The
// mediator is only needed by RefreshProfitLoss and may be nil.
func NewFinancialMetricsCollector(m mediator.Mediator) *FinancialMetricsCollector {
	return &FinancialMetricsCollector{
		mediator: m,

		moneyBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ledger_balance",
				Help:      "Balance after the latest journaled transaction",
			},
			[]string{"session_id"},
		),

		transactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transactions_total",
				Help:      "Total number of transactions by type and category",
			},
			[]string{"session_id", "type", "category"},
		),

		// Amounts are absolute; the category says which way the money moved
		transactionAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transaction_amount",
				Help:      "Transaction amount distribution",
				Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
			},
			[]string{"session_id", "type", "category"},
		),

		totalRevenue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "total_revenue",
				Help:      "Total revenue by category",
			},
			[]string{"session_id", "category"},
		),

		totalExpenses: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "total_expenses",
				Help:      "Total expenses by category",
			},
			[]string{"session_id", "category"},
		),

		netProfit: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "net_profit",
				Help:      "Net profit (revenue - expenses)",
			},
			[]string{"session_id"},
		),
	}
}

// Register registers all financial metrics with the Prometheus registry
func (c *FinancialMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.moneyBalance,
		c.transactionsTotal,
		c.transactionAmount,
		c.totalRevenue,
		c.totalExpenses,
		c.netProfit,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordTransaction records a journaled transaction
func (c *FinancialMetricsCollector) RecordTransaction(sessionID string, transactionType string, category string, amount int, balance int) {
	c.moneyBalance.WithLabelValues(sessionID).Set(float64(balance))
	c.transactionsTotal.WithLabelValues(sessionID, transactionType, category).Inc()

	if amount < 0 {
		amount = -amount
	}
	c.transactionAmount.WithLabelValues(sessionID, transactionType, category).Observe(float64(amount))
}

// RefreshProfitLoss recomputes the P&L gauges from the ledger. The CLI calls
// it when a session ends instead of polling.
func (c *FinancialMetricsCollector) RefreshProfitLoss(ctx context.Context, sessionID string) error {
	if c.mediator == nil {
		return nil
	}

	response, err := c.mediator.Send(ctx, &ledgerQueries.GetProfitLossQuery{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to fetch profit/loss for session %s: %w", sessionID, err)
	}
	pl, ok := response.(*ledgerQueries.GetProfitLossResponse)
	if !ok {
		return fmt.Errorf("unexpected response type for P&L query: %T", response)
	}

	for category, amount := range pl.RevenueBreakdown {
		c.totalRevenue.WithLabelValues(sessionID, category).Set(float64(amount))
	}
	for category, amount := range pl.ExpenseBreakdown {
		c.totalExpenses.WithLabelValues(sessionID, category).Set(float64(amount))
	}
	c.netProfit.WithLabelValues(sessionID).Set(float64(pl.NetProfit))
	return nil
}
