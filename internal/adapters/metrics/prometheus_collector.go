package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/studiosim-go/internal/domain/game"
)

const (
	// Namespace for all metrics
	namespace = "studiosim"
	// Subsystem for engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalStudioCollector is the singleton studio metrics collector
	// Set by SetGlobalStudioCollector() when metrics are enabled
	globalStudioCollector StudioMetricsRecorder

	// globalFinancialCollector is the singleton financial metrics collector
	// Set by SetGlobalFinancialCollector() when metrics are enabled
	globalFinancialCollector FinancialMetricsRecorder
)

// StudioMetricsRecorder defines the interface for recording reducer outcomes
// and the studio snapshot that results from them
type StudioMetricsRecorder interface {
	RecordAction(action string, outcome string)
	RecordStudioState(state *game.State)
}

// FinancialMetricsRecorder defines the interface for recording ledger metrics
type FinancialMetricsRecorder interface {
	RecordTransaction(sessionID string, transactionType string, category string, amount int, balance int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalStudioCollector sets the global studio metrics collector
func SetGlobalStudioCollector(collector StudioMetricsRecorder) {
	globalStudioCollector = collector
}

// RecordAction records the outcome of one dispatched action globally.
// outcome is "applied" or the kind of the rejection event.
func RecordAction(action string, outcome string) {
	if globalStudioCollector != nil {
		globalStudioCollector.RecordAction(action, outcome)
	}
}

// RecordStudioState records the gauges derived from a committed snapshot globally
func RecordStudioState(state *game.State) {
	if globalStudioCollector != nil && state != nil {
		globalStudioCollector.RecordStudioState(state)
	}
}

// SetGlobalFinancialCollector sets the global financial metrics collector
func SetGlobalFinancialCollector(collector FinancialMetricsRecorder) {
	globalFinancialCollector = collector
}

// RecordTransaction records a ledger transaction globally
func RecordTransaction(sessionID string, transactionType string, category string, amount int, balance int) {
	if globalFinancialCollector != nil {
		globalFinancialCollector.RecordTransaction(sessionID, transactionType, category, amount, balance)
	}
}
