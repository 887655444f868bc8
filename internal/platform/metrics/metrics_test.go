package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveMatch("donor", 2, time.Millisecond)
		m.ObserveScorer(time.Millisecond)
		m.IncrementScorerFailure("upstream")
		m.IncrementRegistered("receiver")
		m.IncrementRequestTransition("accepted")
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveMatch("donor", 3, 2*time.Millisecond)
	m.ObserveMatch("donor", 0, time.Millisecond)
	m.ObserveMatch("receiver", 1, time.Millisecond)
	m.IncrementScorerFailure("upstream")
	m.IncrementRegistered("donor")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MatchRuns.WithLabelValues("donor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchRuns.WithLabelValues("receiver")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScorerFailures.WithLabelValues("upstream")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProfilesRegistered.WithLabelValues("donor")))
}

func TestMetrics_HandlerServesOwnRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveMatch("donor", 1, time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "organmatch_match_runs_total")
}
