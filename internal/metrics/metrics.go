package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Bastion
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Domain Metrics
	DetectionsClassifiedTotal prometheus.CounterVec
	ThreatOverridesTotal      prometheus.Counter
	InterceptionsTotal        prometheus.CounterVec
	AlertsGeneratedTotal      prometheus.Counter
	MissilesAddedTotal        prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bastion_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bastion_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bastion_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DetectionsClassifiedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bastion_detections_classified_total",
				Help: "Total aircraft detections classified, by assigned threat level",
			},
			[]string{"threat_level"},
		),
		ThreatOverridesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bastion_threat_overrides_total",
				Help: "Total manual threat level overrides applied",
			},
		),
		InterceptionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bastion_interceptions_total",
				Help: "Total interception attempts by outcome",
			},
			[]string{"outcome"},
		),
		AlertsGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bastion_alerts_generated_total",
				Help: "Total automated alerts raised for unintercepted threats",
			},
		),
		MissilesAddedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bastion_missiles_added_total",
				Help: "Total missiles added to the inventory",
			},
		),
	}
}
