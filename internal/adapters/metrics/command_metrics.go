package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Reducer calls are in-process, so the buckets sit in the sub-millisecond range.
var commandBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5}

// CommandMetricsCollector times and counts every request that passes through
// the mediator. It is itself a prometheus.Collector so a single registration
// exposes all of its series.
type CommandMetricsCollector struct {
	commandDuration  *prometheus.HistogramVec
	commandsTotal    *prometheus.CounterVec
	commandsInFlight prometheus.Gauge
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Time spent handling a command or query, by request and outcome",
				Buckets:   commandBuckets,
			},
			[]string{"command", "status"},
		),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Requests handled, by request and outcome (success, rejected, error)",
			},
			[]string{"command", "status"},
		),
		commandsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_in_flight",
				Help:      "Requests currently inside the mediator pipeline",
			},
		),
	}
}

// Describe implements prometheus.Collector
func (c *CommandMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	c.commandDuration.Describe(ch)
	c.commandsTotal.Describe(ch)
	c.commandsInFlight.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *CommandMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	c.commandDuration.Collect(ch)
	c.commandsTotal.Collect(ch)
	c.commandsInFlight.Collect(ch)
}

// Register adds the collector to the global registry. It is a no-op while
// metrics are disabled.
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}
	return Registry.Register(c)
}

// begin marks a request as in flight and returns the matching end call
func (c *CommandMetricsCollector) begin() func() {
	c.commandsInFlight.Inc()
	return c.commandsInFlight.Dec
}

// RecordCommandExecution records one finished request
func (c *CommandMetricsCollector) RecordCommandExecution(commandName string, duration float64, status string) {
	c.commandDuration.WithLabelValues(commandName, status).Observe(duration)
	c.commandsTotal.WithLabelValues(commandName, status).Inc()
}
