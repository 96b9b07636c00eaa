package sale

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutRequestedEvent(t *testing.T) {
	s := NewSale("SAL123", 1, 1)
	_, err := s.AddItem(10, 2, 1000)
	require.NoError(t, err)
	s.ID = 42
	s.Items[0].ID = 7

	occurredAt := time.Now()
	evt := NewCheckoutRequestedEvent(s, occurredAt)

	assert.Equal(t, "sales-service", evt.Origin)
	assert.Equal(t, CheckoutRequestedEventType, evt.EventType)
	_, err = uuid.Parse(evt.TraceID)
	assert.NoError(t, err, "trace id must be a uuid")

	payload, ok := evt.Payload.(CheckoutRequestedPayload)
	require.True(t, ok)
	assert.Equal(t, uint(42), payload.SaleID)
	assert.Equal(t, "SAL123", payload.SaleNo)
	assert.Equal(t, occurredAt, payload.OccurredAt)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, uint(7), payload.Items[0].SaleItemID)
	assert.Equal(t, uint(10), payload.Items[0].ProductID)
	assert.Equal(t, 2, payload.Items[0].Quantity)
	assert.Equal(t, int64(1000), payload.Items[0].UnitPrice)
}

func TestNewCheckoutRequestedEvent_UniqueTraceIDs(t *testing.T) {
	s := NewSale("SAL123", 1, 1)
	_, err := s.AddItem(10, 1, 1000)
	require.NoError(t, err)

	first := NewCheckoutRequestedEvent(s, time.Now())
	second := NewCheckoutRequestedEvent(s, time.Now())
	assert.NotEqual(t, first.TraceID, second.TraceID)
}
