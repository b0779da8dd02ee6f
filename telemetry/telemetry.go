// Package telemetry exposes Prometheus metrics for the engine's API.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ScoreResults    prometheus.Histogram
}

// New registers and returns the metric set. Call once per process.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "seo_engine_requests_total",
			Help: "Total API requests by operation and status",
		}, []string{"operation", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seo_engine_request_duration_seconds",
			Help:    "API request duration by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		ScoreResults: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "seo_engine_score_results",
			Help:    "Distribution of content scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
}

// ObserveRequest records one handled API request.
func (m *Metrics) ObserveRequest(operation, status string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveScore records one computed content score.
func (m *Metrics) ObserveScore(score int) {
	m.ScoreResults.Observe(float64(score))
}

// Handler returns the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
