// Package metrics owns the Prometheus registry for scoring activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"risk-engine/internal/model"
)

type Metrics struct {
	registry *prometheus.Registry

	Assessments *prometheus.CounterVec
	RiskScores  *prometheus.HistogramVec
	FraudChecks *prometheus.CounterVec
}

// New creates a private registry with the runtime collectors and the scoring
// metrics registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}
	m.Assessments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_assessments_total",
		Help: "Assessment instructions processed, by insurance type and outcome",
	}, []string{"insurance_type", "outcome"})
	m.RiskScores = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "risk_score",
		Help:    "Distribution of risk scores by insurance type",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	}, []string{"insurance_type"})
	m.FraudChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fraud_checks_total",
		Help: "Claims scored for fraud, by band",
	}, []string{"band"})
	reg.MustRegister(m.Assessments, m.RiskScores, m.FraudChecks)

	return m
}

func (m *Metrics) ObserveAssessment(t model.InsuranceType, outcome string, score float64) {
	m.Assessments.WithLabelValues(string(t), outcome).Inc()
	if outcome == model.OutcomeSuccess {
		m.RiskScores.WithLabelValues(string(t)).Observe(score)
	}
}

func (m *Metrics) ObserveFraud(band model.FraudBand) {
	m.FraudChecks.WithLabelValues(string(band)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
