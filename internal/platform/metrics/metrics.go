package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las series del motor de matching, del scorer remoto
// y del ciclo de vida de perfiles/solicitudes.
// Todos los métodos aceptan receiver nil (métricas deshabilitadas).
type Metrics struct {
	MatchRuns     *prometheus.CounterVec
	MatchResults  *prometheus.HistogramVec
	MatchDuration prometheus.Histogram

	ScorerDuration prometheus.Histogram
	ScorerFailures *prometheus.CounterVec

	ProfilesRegistered *prometheus.CounterVec
	RequestTransitions *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registra las series en reg. Con un registry propio por test se evita
// el pánico por registro duplicado en el DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{
		MatchRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organmatch_match_runs_total",
			Help: "Total local match computations by subject role",
		}, []string{"role"}),

		MatchResults: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "organmatch_match_results",
			Help:    "Number of ranked candidates returned per match computation",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"role"}),

		MatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "organmatch_match_duration_seconds",
			Help:    "Duration of a local match computation including pool loading",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),

		ScorerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "organmatch_scorer_duration_seconds",
			Help:    "Duration of remote scorer calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		ScorerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organmatch_scorer_failures_total",
			Help: "Remote scorer failures by reason",
		}, []string{"reason"}), // reason: "not_configured", "upstream"

		ProfilesRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organmatch_profiles_registered_total",
			Help: "Profiles registered by role",
		}, []string{"role"}),

		RequestTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organmatch_match_request_transitions_total",
			Help: "Match request status transitions by target status",
		}, []string{"status"}),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Handler expone /metrics para el registry con el que se construyó.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveMatch(role string, results int, d time.Duration) {
	if m != nil {
		m.MatchRuns.WithLabelValues(role).Inc()
		m.MatchResults.WithLabelValues(role).Observe(float64(results))
		m.MatchDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveScorer(d time.Duration) {
	if m != nil {
		m.ScorerDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementScorerFailure(reason string) {
	if m != nil {
		m.ScorerFailures.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncrementRegistered(role string) {
	if m != nil {
		m.ProfilesRegistered.WithLabelValues(role).Inc()
	}
}

func (m *Metrics) IncrementRequestTransition(status string) {
	if m != nil {
		m.RequestTransitions.WithLabelValues(status).Inc()
	}
}
