package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics for the transformer. Mode is "openai" for real
	// completions, "mock" when no key is configured, "fallback" when the
	// backend call failed and the canned article was served.
	TransformationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transformations_total",
			Help: "Total number of article transformations by generation mode",
		},
		[]string{"mode"},
	)

	OpenAIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openai_request_duration_seconds",
			Help:    "OpenAI chat completion duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version", "environment"},
	)
)

// Init sets the static application info gauge.
func Init(serviceName, version, environment string) {
	ApplicationInfo.WithLabelValues(serviceName, version, environment).Set(1)
}
