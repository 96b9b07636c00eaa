package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow/storepos/internal/domain/sale"
	"github.com/payflow/storepos/internal/infrastructure/persistence/memory"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

type saleFixture struct {
	saleRepo  *memory.SaleRepository
	publisher *memory.EventPublisher
	txManager *memory.TxManager
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	return &saleFixture{
		saleRepo:  memory.NewSaleRepository(),
		publisher: memory.NewEventPublisher(),
		txManager: memory.NewTxManager(),
	}
}

func (f *saleFixture) startSale(t *testing.T) *sale.Sale {
	t.Helper()
	uc := NewStartSaleUseCase(f.saleRepo)
	s, err := uc.Execute(context.Background(), StartSaleRequest{OperatorID: 7, StoreID: 3})
	require.NoError(t, err)
	return s
}

func (f *saleFixture) addItem(t *testing.T, saleID, productID uint, quantity int, unitPrice int64) *sale.Item {
	t.Helper()
	uc := NewAddItemUseCase(f.saleRepo, f.txManager)
	item, err := uc.Execute(context.Background(), AddItemRequest{
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	require.NoError(t, err)
	return item
}

func TestStartSaleUseCase(t *testing.T) {
	f := newSaleFixture(t)
	s := f.startSale(t)

	assert.NotZero(t, s.ID)
	assert.NotEmpty(t, s.SaleNo)
	assert.Equal(t, sale.StatusDraft, s.Status)
	assert.Equal(t, uint(7), s.OperatorID)
	assert.Equal(t, uint(3), s.StoreID)
	assert.Empty(t, s.Items)
}

func TestAddItemUseCase(t *testing.T) {
	t.Run("persists line and totals", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)

		item := f.addItem(t, s.ID, 10, 2, 1000)
		assert.NotZero(t, item.ID)

		f.addItem(t, s.ID, 11, 3, 500)

		persisted, err := f.saleRepo.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Len(t, persisted.Items, 2)
		assert.Equal(t, int64(3500), persisted.Subtotal)
		assert.Equal(t, int64(3500), persisted.Total)
	})

	t.Run("unknown sale", func(t *testing.T) {
		f := newSaleFixture(t)
		uc := NewAddItemUseCase(f.saleRepo, f.txManager)

		_, err := uc.Execute(context.Background(), AddItemRequest{
			SaleID: 99, ProductID: 10, Quantity: 1, UnitPrice: 100,
		})
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
	})

	t.Run("rejects non-draft sale", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)

		checkout := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
		_, err := checkout.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		require.NoError(t, err)

		uc := NewAddItemUseCase(f.saleRepo, f.txManager)
		_, err = uc.Execute(context.Background(), AddItemRequest{
			SaleID: s.ID, ProductID: 11, Quantity: 1, UnitPrice: 100,
		})
		assert.ErrorIs(t, err, sale.ErrSaleNotInDraftStatus)
	})
}

func TestRemoveItemUseCase(t *testing.T) {
	t.Run("drops line and recomputes totals", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		item := f.addItem(t, s.ID, 10, 2, 1000)
		f.addItem(t, s.ID, 11, 1, 500)

		uc := NewRemoveItemUseCase(f.saleRepo, f.txManager)
		updated, err := uc.Execute(context.Background(), RemoveItemRequest{
			SaleID: s.ID,
			ItemID: item.ID,
		})
		require.NoError(t, err)
		assert.Len(t, updated.Items, 1)
		assert.Equal(t, int64(500), updated.Subtotal)
		assert.Equal(t, int64(500), updated.Total)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)

		uc := NewRemoveItemUseCase(f.saleRepo, f.txManager)
		_, err := uc.Execute(context.Background(), RemoveItemRequest{SaleID: s.ID, ItemID: 99})
		assert.ErrorIs(t, err, sale.ErrSaleItemNotFound)
	})
}

func TestApplyDiscountUseCase(t *testing.T) {
	t.Run("applies and replaces", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)

		uc := NewApplyDiscountUseCase(f.saleRepo, f.txManager)
		updated, err := uc.Execute(context.Background(), ApplyDiscountRequest{SaleID: s.ID, Discount: 300})
		require.NoError(t, err)
		assert.Equal(t, int64(700), updated.Total)

		updated, err = uc.Execute(context.Background(), ApplyDiscountRequest{SaleID: s.ID, Discount: 100})
		require.NoError(t, err)
		assert.Equal(t, int64(100), updated.Discount)
		assert.Equal(t, int64(900), updated.Total)
	})

	t.Run("rejects discount above subtotal", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)

		uc := NewApplyDiscountUseCase(f.saleRepo, f.txManager)
		_, err := uc.Execute(context.Background(), ApplyDiscountRequest{SaleID: s.ID, Discount: 1001})
		assert.ErrorIs(t, err, sale.ErrInvalidDiscount)
	})
}

func TestCheckoutSaleUseCase(t *testing.T) {
	t.Run("publishes exactly one event after the status write", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		item := f.addItem(t, s.ID, 10, 2, 1000)

		uc := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
		checked, err := uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCheckoutPending, checked.Status)

		events := f.publisher.Events()
		require.Len(t, events, 1)
		evt := events[0]
		assert.Equal(t, sale.CheckoutRequestedEventType, evt.EventType)
		assert.Equal(t, "sales-service", evt.Origin)
		assert.NotEmpty(t, evt.TraceID)

		payload, ok := evt.Payload.(sale.CheckoutRequestedPayload)
		require.True(t, ok)
		assert.Equal(t, s.ID, payload.SaleID)
		assert.Equal(t, s.SaleNo, payload.SaleNo)
		require.Len(t, payload.Items, 1)
		assert.Equal(t, item.ID, payload.Items[0].SaleItemID)
		assert.Equal(t, uint(10), payload.Items[0].ProductID)
		assert.Equal(t, 2, payload.Items[0].Quantity)
		assert.Equal(t, int64(1000), payload.Items[0].UnitPrice)
		assert.False(t, payload.OccurredAt.IsZero())
	})

	t.Run("double checkout fails without a second event", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)

		uc := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
		_, err := uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		assert.ErrorIs(t, err, sale.ErrSaleNotInDraftStatus)
		assert.Len(t, f.publisher.Events(), 1)
	})

	t.Run("empty sale fails without an event", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)

		uc := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
		_, err := uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		assert.ErrorIs(t, err, sale.ErrSaleWithoutItems)
		assert.Empty(t, f.publisher.Events())

		persisted, err := f.saleRepo.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusDraft, persisted.Status)
	})

	t.Run("publish failure keeps the status", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)
		f.publisher.FailWith(errors.New("broker down"))

		uc := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
		checked, err := uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: s.ID})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodePublishError, appErr.Code)

		// status committed before the publish attempt, no rollback
		require.NotNil(t, checked)
		assert.Equal(t, sale.StatusCheckoutPending, checked.Status)
		persisted, err := f.saleRepo.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCheckoutPending, persisted.Status)
	})
}

func (f *saleFixture) checkout(t *testing.T, saleID uint) {
	t.Helper()
	uc := NewCheckoutSaleUseCase(f.saleRepo, f.publisher, f.txManager)
	_, err := uc.Execute(context.Background(), CheckoutSaleRequest{SaleID: saleID})
	require.NoError(t, err)
}

func TestCompleteSaleUseCase(t *testing.T) {
	t.Run("finalizes a pending sale", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)
		f.checkout(t, s.ID)

		uc := NewCompleteSaleUseCase(f.saleRepo, f.txManager)
		completed, err := uc.Execute(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, completed.Status)
		require.NotNil(t, completed.FinishedAt)

		persisted, err := f.saleRepo.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, persisted.Status)
	})

	t.Run("rejects a draft sale", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)

		uc := NewCompleteSaleUseCase(f.saleRepo, f.txManager)
		_, err := uc.Execute(context.Background(), s.ID)
		assert.ErrorIs(t, err, sale.ErrSaleNotInDraftStatus)
	})

	t.Run("replayed confirmation changes nothing", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)
		f.checkout(t, s.ID)

		uc := NewCompleteSaleUseCase(f.saleRepo, f.txManager)
		_, err := uc.Execute(context.Background(), s.ID)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), s.ID)
		assert.ErrorIs(t, err, sale.ErrSaleNotInDraftStatus)
	})

	t.Run("unknown sale", func(t *testing.T) {
		f := newSaleFixture(t)
		uc := NewCompleteSaleUseCase(f.saleRepo, f.txManager)
		_, err := uc.Execute(context.Background(), 99)
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
	})
}

func TestCancelSaleUseCase(t *testing.T) {
	t.Run("cancels a pending sale", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)
		f.checkout(t, s.ID)

		uc := NewCancelSaleUseCase(f.saleRepo, f.txManager)
		cancelled, err := uc.Execute(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCancelled, cancelled.Status)
		require.NotNil(t, cancelled.FinishedAt)
	})

	t.Run("rejects a completed sale", func(t *testing.T) {
		f := newSaleFixture(t)
		s := f.startSale(t)
		f.addItem(t, s.ID, 10, 1, 1000)
		f.checkout(t, s.ID)

		complete := NewCompleteSaleUseCase(f.saleRepo, f.txManager)
		_, err := complete.Execute(context.Background(), s.ID)
		require.NoError(t, err)

		uc := NewCancelSaleUseCase(f.saleRepo, f.txManager)
		_, err = uc.Execute(context.Background(), s.ID)
		assert.ErrorIs(t, err, sale.ErrSaleNotInDraftStatus)
	})
}

func TestGetSaleUseCase(t *testing.T) {
	f := newSaleFixture(t)
	s := f.startSale(t)
	f.addItem(t, s.ID, 10, 1, 1000)

	uc := NewGetSaleUseCase(f.saleRepo)
	got, err := uc.Execute(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Len(t, got.Items, 1)

	_, err = uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)
}

func TestListSalesUseCase(t *testing.T) {
	f := newSaleFixture(t)
	for i := 0; i < 3; i++ {
		f.startSale(t)
	}

	uc := NewListSalesUseCase(f.saleRepo)
	sales, total, err := uc.Execute(context.Background(), ListSalesRequest{
		StoreID:  3,
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, sales, 2)

	// pagination is normalized, bad values fall back to defaults
	sales, total, err = uc.Execute(context.Background(), ListSalesRequest{StoreID: 3, Page: 0, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, sales, 3)
}
