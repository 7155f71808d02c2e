package observability

import "github.com/prometheus/client_golang/prometheus"

// Gate outcome labels.
const (
	OutcomeAccepted          = "accepted"
	OutcomeMissingCredential = "missing_credential"
	OutcomeInvalidCredential = "invalid_credential"
)

// AuthMetrics holds Prometheus metrics for the authentication gate.
type AuthMetrics struct {
	DecisionsTotal *prometheus.CounterVec
}

// NewAuthMetrics registers and returns gate metrics on the given registerer.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	m := &AuthMetrics{
		DecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authgate_decisions_total",
			Help: "Total authentication decisions by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.DecisionsTotal)

	// Pre-create series so dashboards see zeros before the first request.
	for _, outcome := range []string{OutcomeAccepted, OutcomeMissingCredential, OutcomeInvalidCredential} {
		m.DecisionsTotal.WithLabelValues(outcome)
	}

	return m
}

// RecordDecision increments the counter for outcome. Safe on a nil receiver.
func (m *AuthMetrics) RecordDecision(outcome string) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(outcome).Inc()
}
