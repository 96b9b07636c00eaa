package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsale "github.com/payflow/storepos/internal/application/sale"
	"github.com/payflow/storepos/internal/domain/sale"
	"github.com/payflow/storepos/internal/infrastructure/persistence/memory"
)

type consumerFixture struct {
	saleRepo *memory.SaleRepository
	consumer *FulfillmentConsumer
}

func newConsumerFixture(t *testing.T) *consumerFixture {
	t.Helper()
	saleRepo := memory.NewSaleRepository()
	txManager := memory.NewTxManager()
	return &consumerFixture{
		saleRepo: saleRepo,
		consumer: &FulfillmentConsumer{
			complete: appsale.NewCompleteSaleUseCase(saleRepo, txManager),
			cancel:   appsale.NewCancelSaleUseCase(saleRepo, txManager),
		},
	}
}

// pendingSale walks a sale through draft and checkout so it is waiting
// on a fulfillment outcome.
func (f *consumerFixture) pendingSale(t *testing.T) *sale.Sale {
	t.Helper()
	ctx := context.Background()
	txManager := memory.NewTxManager()
	publisher := memory.NewEventPublisher()

	s, err := appsale.NewStartSaleUseCase(f.saleRepo).Execute(ctx, appsale.StartSaleRequest{OperatorID: 7, StoreID: 3})
	require.NoError(t, err)

	_, err = appsale.NewAddItemUseCase(f.saleRepo, txManager).Execute(ctx, appsale.AddItemRequest{
		SaleID: s.ID, ProductID: 10, Quantity: 1, UnitPrice: 1000,
	})
	require.NoError(t, err)

	checked, err := appsale.NewCheckoutSaleUseCase(f.saleRepo, publisher, txManager).Execute(ctx, appsale.CheckoutSaleRequest{SaleID: s.ID})
	require.NoError(t, err)
	return checked
}

func fulfillmentMessage(eventType string, saleID uint) []byte {
	return []byte(fmt.Sprintf(`{"trace_id":"t-1","event_type":%q,"payload":{"sale_id":%d}}`, eventType, saleID))
}

func TestFulfillmentConsumer_HandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("completed event finalizes the sale", func(t *testing.T) {
		f := newConsumerFixture(t)
		s := f.pendingSale(t)

		err := f.consumer.handleMessage(ctx, fulfillmentMessage(FulfillmentCompletedEventType, s.ID))
		require.NoError(t, err)

		persisted, err := f.saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, persisted.Status)
	})

	t.Run("cancelled event cancels the sale", func(t *testing.T) {
		f := newConsumerFixture(t)
		s := f.pendingSale(t)

		err := f.consumer.handleMessage(ctx, fulfillmentMessage(FulfillmentCancelledEventType, s.ID))
		require.NoError(t, err)

		persisted, err := f.saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCancelled, persisted.Status)
	})

	t.Run("replayed delivery is acked", func(t *testing.T) {
		f := newConsumerFixture(t)
		s := f.pendingSale(t)
		body := fulfillmentMessage(FulfillmentCompletedEventType, s.ID)

		require.NoError(t, f.consumer.handleMessage(ctx, body))
		assert.NoError(t, f.consumer.handleMessage(ctx, body))

		persisted, err := f.saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, persisted.Status)
	})

	t.Run("unknown sale is acked", func(t *testing.T) {
		f := newConsumerFixture(t)
		assert.NoError(t, f.consumer.handleMessage(ctx, fulfillmentMessage(FulfillmentCompletedEventType, 99)))
	})

	t.Run("malformed body is dropped", func(t *testing.T) {
		f := newConsumerFixture(t)
		assert.NoError(t, f.consumer.handleMessage(ctx, []byte("not json")))
	})

	t.Run("missing sale_id is dropped", func(t *testing.T) {
		f := newConsumerFixture(t)
		body := []byte(fmt.Sprintf(`{"event_type":%q,"payload":{}}`, FulfillmentCompletedEventType))
		assert.NoError(t, f.consumer.handleMessage(ctx, body))
	})

	t.Run("unrelated event type is ignored", func(t *testing.T) {
		f := newConsumerFixture(t)
		s := f.pendingSale(t)

		require.NoError(t, f.consumer.handleMessage(ctx, fulfillmentMessage("fulfillment.started", s.ID)))

		persisted, err := f.saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCheckoutPending, persisted.Status)
	})
}
