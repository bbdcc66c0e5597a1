package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOutcome(OutcomeSuccess)
	m.IncrementOutcome(OutcomeSuccess)
	m.IncrementOutcome("invalid_date")
	m.ObserveDecodeLatency(50 * time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DecodeOutcome.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DecodeOutcome.WithLabelValues("invalid_date")))

	count, err := testutil.GatherAndCount(reg, "egid_nationalid_decode_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome(OutcomeSuccess)
		m.ObserveDecodeLatency(time.Millisecond)
	})
}
