// Package observability wires Prometheus metrics for the dashboard API.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms exposed at /metrics.
type Metrics struct {
	AssessmentsTotal prometheus.Counter
	ScoreRequests    *prometheus.CounterVec // labels: stage, outcome={ok,bad_request}
	RequestDuration  *prometheus.HistogramVec // labels: route
	DatasetCities    prometheus.Gauge
}

// NewMetrics creates and registers all API metrics with the given
// registerer. Passing prometheus.DefaultRegisterer wires the standard
// /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake",
			Name:      "assessments_total",
			Help:      "Total full assessments served.",
		}),
		ScoreRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake",
			Name:      "score_requests_total",
			Help:      "Scoring requests by stage and outcome.",
		}, []string{"stage", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quake",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		DatasetCities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake",
			Name:      "dataset_cities",
			Help:      "Number of cities in the session dataset.",
		}),
	}

	reg.MustRegister(m.AssessmentsTotal, m.ScoreRequests, m.RequestDuration, m.DatasetCities)
	return m
}
