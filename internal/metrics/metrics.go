// Package metrics exposes accord's Prometheus instrumentation, mirroring
// the teacher's internal/adapter/inbound/http/metrics.go promauto.With(reg)
// style. These metrics are only served (over /metrics) when the CLI is
// given --metrics-addr; the engine itself never starts an HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus instruments for the engine. Pass to
// components that need to record them.
type Metrics struct {
	ConstraintsIndexedTotal prometheus.Counter
	EventsClassifiedTotal   prometheus.Counter
	ConflictsTotal          prometheus.Counter
	BuildDuration           prometheus.Histogram
	ClassifyDuration        prometheus.Histogram
}

// NewMetrics creates and registers every instrument with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ConstraintsIndexedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "accord",
			Name:      "constraints_indexed_total",
			Help:      "Total number of constraints inserted into the index.",
		}),
		EventsClassifiedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "accord",
			Name:      "events_classified_total",
			Help:      "Total number of events classified.",
		}),
		ConflictsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "accord",
			Name:      "conflicts_total",
			Help:      "Total number of events classified as conflicts.",
		}),
		BuildDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "accord",
			Name:      "build_duration_seconds",
			Help:      "Time to build the constraint index for one batch.",
			Buckets:   prometheus.DefBuckets,
		}),
		ClassifyDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "accord",
			Name:      "classify_duration_seconds",
			Help:      "Time to classify one event batch.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveBuild records one Build cycle's outcome.
func (m *Metrics) ObserveBuild(seconds float64, constraintsIndexed int) {
	m.BuildDuration.Observe(seconds)
	m.ConstraintsIndexedTotal.Add(float64(constraintsIndexed))
}

// ObserveClassify records one Classify cycle's outcome.
func (m *Metrics) ObserveClassify(seconds float64, eventsClassified, conflicts int) {
	m.ClassifyDuration.Observe(seconds)
	m.EventsClassifiedTotal.Add(float64(eventsClassified))
	m.ConflictsTotal.Add(float64(conflicts))
}
