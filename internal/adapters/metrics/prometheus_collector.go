package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	// Namespace for all metrics
	namespace = "ogametools"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry
)

// InitRegistry initializes the Prometheus registry
// Should be called once per process run if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the global registry, disabling collection
func Reset() {
	Registry = nil
}

// register adds collectors to the global registry, skipping when disabled
func register(collectors ...prometheus.Collector) error {
	if !IsEnabled() {
		return nil
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// WriteText dumps every gathered metric family in the Prometheus text
// exposition format. A CLI run has no scrape endpoint, so the snapshot is
// printed once the command finishes.
func WriteText(w io.Writer) error {
	if !IsEnabled() {
		return nil
	}

	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
