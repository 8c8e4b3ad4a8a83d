/*
Package observability provides Prometheus instrumentation for the bot:
counters for processed intents, flow outcomes, and policy denials.
*/
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Flow outcome labels.
const (
	OutcomeCompleted    = "completed"
	OutcomeCancelled    = "cancelled"
	OutcomeShortCircuit = "short_circuit"
	OutcomeError        = "error"
)

// Metrics holds the bot's Prometheus collectors.
type Metrics struct {
	Intents *prometheus.CounterVec
	Flows   *prometheus.CounterVec
	Denials prometheus.Counter
}

// NewMetrics creates and registers the collectors on the given registerer.
// Pass prometheus.DefaultRegisterer for the usual global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rankery_intents_total",
				Help: "Inbound intents processed, by intent kind.",
			},
			[]string{"kind"},
		),
		Flows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rankery_flows_total",
				Help: "Flow terminations, by flow kind and outcome.",
			},
			[]string{"flow", "outcome"},
		),
		Denials: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rankery_policy_denials_total",
				Help: "Intents rejected by the access policy.",
			},
		),
	}
	reg.MustRegister(m.Intents, m.Flows, m.Denials)
	return m
}

// IntentSeen records an inbound intent. Nil-safe.
func (m *Metrics) IntentSeen(kind string) {
	if m == nil {
		return
	}
	m.Intents.WithLabelValues(kind).Inc()
}

// FlowEnded records a flow termination. Nil-safe.
func (m *Metrics) FlowEnded(flow, outcome string) {
	if m == nil {
		return
	}
	m.Flows.WithLabelValues(flow, outcome).Inc()
}

// Denied records a policy denial. Nil-safe.
func (m *Metrics) Denied() {
	if m == nil {
		return
	}
	m.Denials.Inc()
}
