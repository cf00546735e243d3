package negotiation

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for negotiation operations.
type Metrics struct {
	negotiationsTotal *prometheus.CounterVec
	failuresTotal     *prometheus.CounterVec
	duration          prometheus.Histogram
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// Negotiation result labels.
const (
	// ResultSelected marks a value selected from a client preference.
	ResultSelected = "selected"

	// ResultDefault marks a value supplied by default fallback.
	ResultDefault = "default"

	// ResultNotApplicable marks a family with no configured priorities.
	ResultNotApplicable = "not_applicable"
)

// GetMetrics returns the singleton negotiation metrics instance.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			negotiationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "negotiation",
					Subsystem: "core",
					Name:      "negotiations_total",
					Help:      "Total number of per-family negotiations",
				},
				[]string{"family", "result"},
			),
			failuresTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "negotiation",
					Subsystem: "core",
					Name:      "failures_total",
					Help:      "Total number of negotiations with no acceptable representation",
				},
				[]string{"family"},
			),
			duration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "negotiation",
					Subsystem: "core",
					Name:      "duration_seconds",
					Help:      "Duration of full request negotiation",
					Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
				},
			),
		}
	})
	return metricsInstance
}

// RecordNegotiation records a per-family negotiation result.
func (m *Metrics) RecordNegotiation(family Family, result string) {
	m.negotiationsTotal.WithLabelValues(family.String(), result).Inc()
}

// RecordFailure records a per-family negotiation failure.
func (m *Metrics) RecordFailure(family Family) {
	m.failuresTotal.WithLabelValues(family.String()).Inc()
}

// ObserveDuration records the duration of a full request negotiation.
func (m *Metrics) ObserveDuration(seconds float64) {
	m.duration.Observe(seconds)
}
