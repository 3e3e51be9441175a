package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	webhookRequests     *prometheus.CounterVec
	webhookDuration     *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	dashboardRequests   *prometheus.CounterVec
	dashboardDuration   prometheus.Histogram
	limitsSavedTotal    prometheus.Counter
	signInEventsTotal   *prometheus.CounterVec
	checkoutStartsTotal prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		webhookRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_requests_total",
				Help: "Total number of automation webhook requests by endpoint and outcome",
			},
			[]string{"endpoint", "status"},
		),
		webhookDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webhook_request_duration_milliseconds",
				Help:    "Automation webhook request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"endpoint"},
		),
		dashboardRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard loads",
			},
			[]string{"status"},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_load_duration_seconds",
				Help:    "Dashboard load duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		limitsSavedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "category_limits_saved_total",
				Help: "Total number of limit set saves",
			},
		),
		signInEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_events_total",
				Help: "Total number of session events",
			},
			[]string{"event_type"},
		),
		checkoutStartsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_starts_total",
				Help: "Total number of checkout redirects issued",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case "webhook_requests":
		m.webhookRequests.WithLabelValues(labels["endpoint"], labels["status"]).Inc()
	case "dashboard_request":
		if status := labels["status"]; status != "" {
			m.dashboardRequests.WithLabelValues(status).Inc()
		}
	case "limits_saved":
		m.limitsSavedTotal.Inc()
	case "session_event":
		if eventType := labels["event_type"]; eventType != "" {
			m.signInEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "checkout_started":
		m.checkoutStartsTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(operation string, duration time.Duration) {
	switch operation {
	case "dashboard_load":
		m.dashboardDuration.Observe(duration.Seconds())
	default:
		m.webhookDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) SetCircuitBreakerState(endpoint string, state int) {
	m.circuitBreakerState.WithLabelValues(endpoint).Set(float64(state))
}
