package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the private registry exposed on /api/metrics
	Registry = prometheus.NewRegistry()

	// CustomAPIBuckets covers fast local handlers up to slow relay calls
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34}

	// HTTP Metrics
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Upstream provider metrics (email relay, captcha, webhooks)
	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Outbound provider call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"provider", "status"},
	)

	ProviderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_request_total",
			Help: "Total number of outbound provider calls",
		},
		[]string{"provider", "status"},
	)

	// Business Metrics
	ContactFormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_form_submissions_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"status"},
	)

	ContentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_requests_total",
			Help: "Total number of profile content reads by section",
		},
		[]string{"section"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequestDuration,
		HTTPRequestTotal,
		ActiveRequests,
		ProviderRequestDuration,
		ProviderRequestTotal,
		ContactFormSubmissions,
		ContentRequests,
	)
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
