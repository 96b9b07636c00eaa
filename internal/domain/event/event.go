// Package event defines the domain event envelope shared by every
// event this service emits, and the publisher port the application
// layer depends on.
package event

import (
	"context"

	"github.com/google/uuid"
)

// DomainEvent is the fixed wire envelope. Every event type has exactly
// one schema; payloads are plain structs serialized as-is, with no
// alternative serialization path.
type DomainEvent struct {
	TraceID   string      `json:"trace_id"`
	Origin    string      `json:"origin"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
}

// New builds an envelope with a fresh trace id.
func New(origin, eventType string, payload interface{}) DomainEvent {
	return DomainEvent{
		TraceID:   uuid.NewString(),
		Origin:    origin,
		EventType: eventType,
		Payload:   payload,
	}
}

// Publisher hands events to the broker with at-least-once semantics.
// Once Publish returns nil the broker owns durability; the caller does
// not retry.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent) error
}
