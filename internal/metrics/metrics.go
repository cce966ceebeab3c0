// Package metrics exposes a solver run's StatisticTracker as
// Prometheus gauges, so a long-running benchmark process can be
// scraped while it works through a batch of problems.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/elektrokombinacija/mapfm-epea/internal/algo"
)

// Collector publishes one solver run's statistics under the
// "mapfm_solver" namespace.
type Collector struct {
	assignmentsEvaluated prometheus.Gauge
	assignmentsSkipped   prometheus.Gauge
	maxGroupSize         prometheus.Gauge
	solveDuration        prometheus.Histogram
}

// NewCollector builds and registers a Collector against reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		assignmentsEvaluated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mapfm_solver",
			Name:      "assignments_evaluated",
			Help:      "Goal assignments actually solved in the most recent run.",
		}),
		assignmentsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mapfm_solver",
			Name:      "assignments_skipped",
			Help:      "Goal assignments pruned by initial-heuristic cost bound in the most recent run.",
		}),
		maxGroupSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mapfm_solver",
			Name:      "max_group_size",
			Help:      "Largest Independence Detection group solved jointly in the most recent run.",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mapfm_solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time to solve one problem.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.assignmentsEvaluated, c.assignmentsSkipped, c.maxGroupSize, c.solveDuration)
	return c
}

// Observe pushes stats into the gauges and records elapsedSeconds.
func (c *Collector) Observe(stats *algo.StatisticTracker, elapsedSeconds float64) {
	c.assignmentsEvaluated.Set(float64(stats.AssignmentsEvaluated))
	c.assignmentsSkipped.Set(float64(stats.AssignmentsSkipped))
	c.maxGroupSize.Set(float64(stats.MaxGroupSize))
	c.solveDuration.Observe(elapsedSeconds)
}
