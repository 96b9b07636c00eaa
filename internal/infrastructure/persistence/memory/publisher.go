package memory

import (
	"context"
	"sync"

	"github.com/payflow/storepos/internal/domain/event"
)

// EventPublisher records published events instead of sending them to a
// broker. FailWith forces the next Publish calls to fail so tests can
// exercise the publish-failure path.
type EventPublisher struct {
	mu     sync.Mutex
	events []event.DomainEvent
	err    error
}

// NewEventPublisher creates an empty recorder.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (p *EventPublisher) Publish(ctx context.Context, evt event.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	p.events = append(p.events, evt)
	return nil
}

// Events returns a snapshot of everything published so far.
func (p *EventPublisher) Events() []event.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]event.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// FailWith makes subsequent Publish calls return err. Pass nil to
// restore normal behavior.
func (p *EventPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}
