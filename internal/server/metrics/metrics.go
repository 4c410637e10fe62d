// Package metrics holds the Prometheus collectors of the transfer engine.
//
// All recording methods are safe on a nil *Metrics, so components built
// without metrics (most unit tests) need no special casing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "raptorboost"

// Finalize outcomes.
const (
	ResultComplete         = "complete"
	ResultChecksumMismatch = "checksum_mismatch"
)

type Metrics struct {
	bytesReceived  prometheus.Counter
	finalized      *prometheus.CounterVec
	negotiated     *prometheus.CounterVec
	names          *prometheus.CounterVec
	activeWriters  prometheus.Gauge
	writeConflicts prometheus.Counter
	ingestDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg
// creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		bytesReceived: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "bytes_staged_total",
			Help:      "Object bytes appended to staging.",
		}),
		finalized: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "finalized_total",
			Help:      "Finalize attempts by result.",
		}, []string{"result"}),
		negotiated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload",
			Name:      "negotiated_digests_total",
			Help:      "Digests looked up by UploadFiles, by state.",
		}, []string{"state"}),
		names: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "naming",
			Name:      "assignments_total",
			Help:      "Name assignments by outcome.",
		}, []string{"outcome"}),
		activeWriters: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "active_writers",
			Help:      "Digests currently held by a writer lease.",
		}),
		writeConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "write_conflicts_total",
			Help:      "Writer leases refused because the digest was already held.",
		}),
		ingestDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upload",
			Name:      "ingest_stream_duration_seconds",
			Help:      "Lifetime of SendFileData streams.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 15, 60, 300, 1800},
		}),
	}
}

func (m *Metrics) BytesStaged(n int) {
	if m == nil {
		return
	}
	m.bytesReceived.Add(float64(n))
}

func (m *Metrics) Finalized(result string) {
	if m == nil {
		return
	}
	m.finalized.WithLabelValues(result).Inc()
}

func (m *Metrics) Negotiated(state string) {
	if m == nil {
		return
	}
	m.negotiated.WithLabelValues(state).Inc()
}

func (m *Metrics) NameAssigned(outcome string) {
	if m == nil {
		return
	}
	m.names.WithLabelValues(outcome).Inc()
}

func (m *Metrics) WriterAcquired() {
	if m == nil {
		return
	}
	m.activeWriters.Inc()
}

func (m *Metrics) WriterReleased() {
	if m == nil {
		return
	}
	m.activeWriters.Dec()
}

func (m *Metrics) WriteConflict() {
	if m == nil {
		return
	}
	m.writeConflicts.Inc()
}

func (m *Metrics) IngestFinished(started time.Time) {
	if m == nil {
		return
	}
	m.ingestDuration.Observe(time.Since(started).Seconds())
}
