package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeSuccess labels decodes that produced a record. Failures are labelled
// with their error kind.
const OutcomeSuccess = "success"

// Metrics provides observability for national ID decoding.
type Metrics struct {
	// Decode outcomes by result ("success" or failure kind)
	DecodeOutcome *prometheus.CounterVec

	DecodeLatency prometheus.Histogram
}

// New creates the decoding metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DecodeOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "egid_nationalid_decodes_total",
			Help: "Total national ID decode attempts by outcome",
		}, []string{"outcome"}),

		DecodeLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "egid_nationalid_decode_duration_seconds",
			Help:    "Duration of national ID decoding",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),
	}
}

// IncrementOutcome records a decode outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.DecodeOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveDecodeLatency records how long a decode took.
func (m *Metrics) ObserveDecodeLatency(d time.Duration) {
	if m != nil {
		m.DecodeLatency.Observe(d.Seconds())
	}
}
