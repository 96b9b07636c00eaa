package metrics

import (
	"testing"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Fatal("HTTPRequestsTotal not registered")
	}
	if SalesStartedTotal == nil {
		t.Fatal("SalesStartedTotal not registered")
	}
	if CheckoutsTotal == nil {
		t.Fatal("CheckoutsTotal not registered")
	}
	if EventsPublishedTotal == nil {
		t.Fatal("EventsPublishedTotal not registered")
	}

	// second call must not re-register on the default registry
	InitMetrics()

	// labeled instruments accept writes
	HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200").Inc()
	CheckoutsTotal.WithLabelValues("success").Inc()
	StockReservationsTotal.WithLabelValues("failure").Inc()
	EventsPublishedTotal.WithLabelValues("sale.checkout_requested", "success").Inc()
	CircuitBreakerState.WithLabelValues("rabbitmq-publish").Set(1)
}
