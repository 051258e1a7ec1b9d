package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

// ProductionMetricsCollector counts mine formula evaluations.
// Implements production.MetricsRecorder.
type ProductionMetricsCollector struct {
	evaluationsTotal *prometheus.CounterVec
	levelsEvaluated  *prometheus.CounterVec
}

// NewProductionMetricsCollector creates a new production metrics collector
func NewProductionMetricsCollector() *ProductionMetricsCollector {
	return &ProductionMetricsCollector{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "production",
				Name:      "mine_evaluations_total",
				Help:      "Number of mine evaluation batches by resource",
			},
			[]string{"resource"},
		),
		levelsEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "production",
				Name:      "mine_levels_evaluated_total",
				Help:      "Number of individual mine levels evaluated by resource",
			},
			[]string{"resource"},
		),
	}
}

// Register registers all production metrics with the Prometheus registry
func (c *ProductionMetricsCollector) Register() error {
	return register(c.evaluationsTotal, c.levelsEvaluated)
}

// RecordMineEvaluation records that a batch of levels was computed for a mine
func (c *ProductionMetricsCollector) RecordMineEvaluation(resource shared.Resource, levels int) {
	label := resource.String()
	c.evaluationsTotal.WithLabelValues(label).Inc()
	c.levelsEvaluated.WithLabelValues(label).Add(float64(levels))
}
