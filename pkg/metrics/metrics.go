// Package metrics exposes the service's Prometheus instruments.
// Counters end in _total, histograms in their unit, gauges use present
// tense. Call InitMetrics once at startup; instruments register on the
// default registry via promauto and are served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized guards against double registration.
	initialized bool

	// HTTP metrics

	// HTTPRequestsTotal counts requests by method, path, status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency.
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress gauges in-flight requests.
	HTTPRequestsInProgress prometheus.Gauge

	// Business metrics

	// SalesStartedTotal counts sales opened in draft.
	SalesStartedTotal prometheus.Counter

	// CheckoutsTotal counts checkout attempts by result.
	CheckoutsTotal *prometheus.CounterVec

	// CheckoutDuration observes the checkout path latency.
	CheckoutDuration prometheus.Histogram

	// StockReservationsTotal counts reservation attempts by result.
	StockReservationsTotal *prometheus.CounterVec

	// Circuit breaker metrics

	// CircuitBreakerState gauges breaker state per name
	// (0=CLOSED, 1=OPEN, 2=HALF_OPEN).
	CircuitBreakerState *prometheus.GaugeVec

	// Messaging metrics

	// EventsPublishedTotal counts published events by type and result.
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics registers all instruments. Safe to call once; later calls
// are no-ops.
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "In-flight HTTP requests",
		},
	)

	SalesStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_started_total",
			Help: "Total draft sales opened",
		},
	)

	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_checkouts_total",
			Help: "Total checkout attempts",
		},
		[]string{"result"},
	)

	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sale_checkout_duration_seconds",
			Help:    "Checkout latency",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)

	StockReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_reservations_total",
			Help: "Total stock reservation attempts",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total domain events published",
		},
		[]string{"event_type", "result"},
	)
}
