package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/studiosim-go/internal/domain/game"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// StudioMetricsCollector tracks dispatched actions and the shape of the
// studio after each committed action.
type StudioMetricsCollector struct {
	actionsTotal *prometheus.CounterVec

	money        prometheus.Gauge
	reputation   prometheus.Gauge
	day          prometheus.Gauge
	playerLevel  prometheus.Gauge
	staffByState *prometheus.GaugeVec

	stageProgress     prometheus.Gauge
	projectsCompleted prometheus.Gauge
}

// NewStudioMetricsCollector creates a new studio metrics collector
func NewStudioMetricsCollector() *StudioMetricsCollector {
	return &StudioMetricsCollector{
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "actions_total",
				Help:      "Dispatched actions by name and outcome (applied or rejection kind)",
			},
			[]string{"action", "outcome"},
		),
		money: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "studio_money",
			Help:      "Current studio money",
		}),
		reputation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "studio_reputation",
			Help:      "Current studio reputation",
		}),
		day: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "studio_day",
			Help:      "Current in-game day",
		}),
		playerLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "player_level",
			Help:      "Current player level",
		}),
		staffByState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "staff_members",
				Help:      "Hired staff members by status",
			},
			[]string{"status"},
		),
		stageProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stage_progress_ratio",
			Help:      "Completed share of the active project's current stage (0 without a project)",
		}),
		projectsCompleted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "projects_completed",
			Help:      "Projects settled in this session",
		}),
	}
}

// Register registers all studio metrics with the Prometheus registry
func (c *StudioMetricsCollector) Register() error {
	if Registry == nil {
		return nil
	}

	metrics := []prometheus.Collector{
		c.actionsTotal,
		c.money,
		c.reputation,
		c.day,
		c.playerLevel,
		c.staffByState,
		c.stageProgress,
		c.projectsCompleted,
	}
	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordAction counts one dispatched action
func (c *StudioMetricsCollector) RecordAction(action string, outcome string) {
	c.actionsTotal.WithLabelValues(action, outcome).Inc()
}

// RecordStudioState refreshes every gauge from a snapshot
func (c *StudioMetricsCollector) RecordStudioState(state *game.State) {
	c.money.Set(float64(state.Money))
	c.reputation.Set(float64(state.Reputation))
	c.day.Set(float64(state.Day))
	c.playerLevel.Set(float64(state.Player.Level))
	c.projectsCompleted.Set(float64(len(state.CompletedProjects)))

	counts := make(map[staff.Status]int, len(staff.AllStatuses()))
	for _, m := range state.Staff.Members() {
		counts[m.Status]++
	}
	for _, status := range staff.AllStatuses() {
		c.staffByState.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	progress := 0.0
	if state.ActiveProject != nil {
		if stage, ok := state.ActiveProject.CurrentStage(); ok {
			progress = stage.Progress()
		}
	}
	c.stageProgress.Set(progress)
}
