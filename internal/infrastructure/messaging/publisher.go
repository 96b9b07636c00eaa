// Package messaging adapts the broker to the domain event port.
package messaging

import (
	"context"
	"log"
	"time"

	"github.com/payflow/storepos/internal/domain/event"
	"github.com/payflow/storepos/pkg/circuitbreaker"
	"github.com/payflow/storepos/pkg/metrics"
	"github.com/payflow/storepos/pkg/mq"
)

// EventPublisher publishes domain events to RabbitMQ. A circuit
// breaker guards the broker path so a dead broker fails fast instead
// of stalling every checkout on connection timeouts.
type EventPublisher struct {
	publisher *mq.Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewEventPublisher wraps an AMQP publisher. The event type doubles as
// the routing key, so consumers bind queues per event type.
func NewEventPublisher(publisher *mq.Publisher) *EventPublisher {
	breaker := circuitbreaker.NewCircuitBreaker("rabbitmq-publish", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
	})

	return &EventPublisher{
		publisher: publisher,
		breaker:   breaker,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, evt event.DomainEvent) error {
	err := p.breaker.Execute(func() error {
		return p.publisher.Publish(ctx, evt.EventType, evt)
	})
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(evt.EventType, "failure").Inc()
		return err
	}

	metrics.EventsPublishedTotal.WithLabelValues(evt.EventType, "success").Inc()
	return nil
}
