package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	appsale "github.com/payflow/storepos/internal/application/sale"
	"github.com/payflow/storepos/internal/domain/sale"
	apperrors "github.com/payflow/storepos/pkg/errors"
	"github.com/payflow/storepos/pkg/mq"
)

// Fulfillment outcome event types consumed from downstream.
const (
	FulfillmentCompletedEventType = "fulfillment.completed"
	FulfillmentCancelledEventType = "fulfillment.cancelled"
)

// fulfillmentEnvelope is the inbound event wrapper; only the fields we
// act on are decoded.
type fulfillmentEnvelope struct {
	TraceID   string             `json:"trace_id"`
	EventType string             `json:"event_type"`
	Payload   fulfillmentPayload `json:"payload"`
}

type fulfillmentPayload struct {
	SaleID uint `json:"sale_id"`
}

// FulfillmentConsumer applies downstream fulfillment outcomes to sales:
// fulfillment.completed moves a sale to COMPLETED, fulfillment.cancelled
// to CANCELLED. Delivery is at-least-once; replays are rejected by the
// sale status machine and acked instead of requeued.
type FulfillmentConsumer struct {
	consumer *mq.Consumer
	complete *appsale.CompleteSaleUseCase
	cancel   *appsale.CancelSaleUseCase
}

// NewFulfillmentConsumer binds a queue to both fulfillment outcome
// routing keys.
func NewFulfillmentConsumer(url, exchange, queue string, complete *appsale.CompleteSaleUseCase, cancel *appsale.CancelSaleUseCase) (*FulfillmentConsumer, error) {
	consumer, err := mq.NewConsumer(url, exchange, "topic", queue, []string{
		FulfillmentCompletedEventType,
		FulfillmentCancelledEventType,
	})
	if err != nil {
		return nil, err
	}

	return &FulfillmentConsumer{
		consumer: consumer,
		complete: complete,
		cancel:   cancel,
	}, nil
}

// Run consumes until ctx is cancelled.
func (c *FulfillmentConsumer) Run(ctx context.Context) error {
	return c.consumer.Consume(ctx, func(body []byte) error {
		return c.handleMessage(ctx, body)
	})
}

// Close releases the broker connection.
func (c *FulfillmentConsumer) Close() error {
	return c.consumer.Close()
}

func (c *FulfillmentConsumer) handleMessage(ctx context.Context, body []byte) error {
	var envelope fulfillmentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// malformed messages never become valid, drop instead of requeue
		log.Printf("fulfillment: dropping malformed message: %v", err)
		return nil
	}
	if envelope.Payload.SaleID == 0 {
		log.Printf("fulfillment: dropping %s without sale_id, trace=%s", envelope.EventType, envelope.TraceID)
		return nil
	}

	var err error
	switch envelope.EventType {
	case FulfillmentCompletedEventType:
		_, err = c.complete.Execute(ctx, envelope.Payload.SaleID)
	case FulfillmentCancelledEventType:
		_, err = c.cancel.Execute(ctx, envelope.Payload.SaleID)
	default:
		log.Printf("fulfillment: ignoring event type %s", envelope.EventType)
		return nil
	}

	if err != nil {
		// replay of an already-terminal sale, ack and move on
		if errors.Is(err, sale.ErrSaleNotInDraftStatus) {
			log.Printf("fulfillment: sale %d already finalized, trace=%s", envelope.Payload.SaleID, envelope.TraceID)
			return nil
		}
		// unknown sale ids are a producer bug, requeueing won't fix them
		if errors.Is(err, sale.ErrSaleNotFound) {
			log.Printf("fulfillment: sale %d not found, trace=%s", envelope.Payload.SaleID, envelope.TraceID)
			return nil
		}
		if apperrors.GetAppError(err).Code >= 50000 {
			// storage failure, requeue
			return fmt.Errorf("apply %s to sale %d: %w", envelope.EventType, envelope.Payload.SaleID, err)
		}
		log.Printf("fulfillment: dropping %s for sale %d: %v", envelope.EventType, envelope.Payload.SaleID, err)
		return nil
	}

	log.Printf("fulfillment: sale %d -> %s, trace=%s", envelope.Payload.SaleID, envelope.EventType, envelope.TraceID)
	return nil
}
