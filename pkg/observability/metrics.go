// Package observability provides Prometheus metrics and health endpoints
// for the assessment service.
package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricsOnce sync.Once

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	modelCallsTotal     *prometheus.CounterVec
	modelCallDuration   *prometheus.HistogramVec
)

// InitMetrics registers the service metrics. Safe to call more than once.
func InitMetrics() {
	metricsOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qihang_http_requests_total",
				Help: "Total HTTP requests by method, path and status.",
			},
			[]string{"method", "path", "status"},
		)
		httpRequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qihang_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		)
		modelCallsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qihang_model_calls_total",
				Help: "Total LLM calls by provider and outcome.",
			},
			[]string{"provider", "status"},
		)
		modelCallDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qihang_model_call_duration_seconds",
				Help:    "LLM call latency by provider.",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
			},
			[]string{"provider"},
		)
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			modelCallsTotal,
			modelCallDuration,
		)
	})
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordModelCall records one outbound LLM call.
func RecordModelCall(provider, status string, duration time.Duration) {
	if modelCallsTotal == nil {
		return
	}
	modelCallsTotal.WithLabelValues(provider, status).Inc()
	modelCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
