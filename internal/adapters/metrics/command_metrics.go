package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// QueryMetricsCollector handles mediator request execution metrics
type QueryMetricsCollector struct {
	queryDuration *prometheus.HistogramVec
	queriesTotal  *prometheus.CounterVec
}

// NewQueryMetricsCollector creates a new query metrics collector
func NewQueryMetricsCollector() *QueryMetricsCollector {
	return &QueryMetricsCollector{
		// Calculations are in-memory, so buckets start well below a millisecond
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "query_duration_seconds",
				Help:      "Query execution duration distribution",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
			},
			[]string{"query", "status"},
		),

		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "queries_total",
				Help:      "Total number of queries executed by type and status",
			},
			[]string{"query", "status"},
		),
	}
}

// Register registers all query metrics with the Prometheus registry
func (c *QueryMetricsCollector) Register() error {
	return register(c.queryDuration, c.queriesTotal)
}

// RecordQueryExecution records query execution metrics
func (c *QueryMetricsCollector) RecordQueryExecution(
	queryName string,
	duration float64,
	success bool,
) {
	status := "success"
	if !success {
		status = "error"
	}

	c.queryDuration.WithLabelValues(queryName, status).Observe(duration)
	c.queriesTotal.WithLabelValues(queryName, status).Inc()
}
