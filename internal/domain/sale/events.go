package sale

import (
	"time"

	"github.com/payflow/storepos/internal/domain/event"
)

// CheckoutRequestedEventType is the routing key and event_type of the
// checkout handoff to fulfillment.
const CheckoutRequestedEventType = "sale.checkout_requested"

const eventOrigin = "sales-service"

// CheckoutRequestedPayload is the immutable snapshot of the sale at
// checkout time.
type CheckoutRequestedPayload struct {
	SaleID     uint                    `json:"sale_id"`
	SaleNo     string                  `json:"sale_no"`
	Items      []CheckoutRequestedItem `json:"items"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// CheckoutRequestedItem is one snapshotted line.
type CheckoutRequestedItem struct {
	SaleItemID uint  `json:"sale_item_id"`
	ProductID  uint  `json:"product_id"`
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unit_price_in_cents"`
}

// NewCheckoutRequestedEvent snapshots the sale's lines into the fixed
// wire schema.
func NewCheckoutRequestedEvent(s *Sale, occurredAt time.Time) event.DomainEvent {
	items := make([]CheckoutRequestedItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = CheckoutRequestedItem{
			SaleItemID: item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
	}

	return event.New(eventOrigin, CheckoutRequestedEventType, CheckoutRequestedPayload{
		SaleID:     s.ID,
		SaleNo:     s.SaleNo,
		Items:      items,
		OccurredAt: occurredAt,
	})
}
