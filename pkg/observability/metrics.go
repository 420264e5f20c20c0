package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/machina/pkg/domain"
)

// Metrics holds the Prometheus collectors for machine execution.
type Metrics struct {
	runs     *prometheus.CounterVec
	steps    prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics registers the collectors on reg (use prometheus.DefaultRegisterer
// for the process-wide registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "machina_runs_total",
			Help: "Completed runs by terminal status.",
		}, []string{"status"}),
		steps: factory.NewCounter(prometheus.CounterOpts{
			Name: "machina_steps_total",
			Help: "Executed machine steps.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "machina_run_duration_seconds",
			Help:    "Wall-clock duration of completed runs.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Hooks returns lifecycle hooks feeding the collectors. Install them on a
// Simulator via machina.WithHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ev *domain.StepEvent) {
			m.steps.Inc()
		},
		OnHalt: func(ev *domain.HaltEvent) {
			m.runs.WithLabelValues(string(ev.Status)).Inc()
		},
	}
}

// ObserveRun records the duration of one completed run.
func (m *Metrics) ObserveRun(d time.Duration) {
	m.duration.Observe(d.Seconds())
}
