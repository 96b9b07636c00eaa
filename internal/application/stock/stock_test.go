package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow/storepos/internal/domain/product"
	"github.com/payflow/storepos/internal/domain/stock"
	"github.com/payflow/storepos/internal/infrastructure/persistence/memory"
	apperrors "github.com/payflow/storepos/pkg/errors"
)

type stockFixture struct {
	productRepo *memory.ProductRepository
	stockRepo   *memory.StockRepository
	txManager   *memory.TxManager
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	return &stockFixture{
		productRepo: memory.NewProductRepository(),
		stockRepo:   memory.NewStockRepository(),
		txManager:   memory.NewTxManager(),
	}
}

func (f *stockFixture) seedProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(1, "Espresso", "", 350, true, "SKU-001")
	require.NoError(t, err)
	require.NoError(t, f.productRepo.Create(context.Background(), p))
	return p
}

func (f *stockFixture) seedStock(t *testing.T, productID uint, available int) *stock.Record {
	t.Helper()
	record, err := stock.NewRecord(productID, available, 0)
	require.NoError(t, err)
	require.NoError(t, f.stockRepo.Create(context.Background(), record))
	return record
}

func TestCreateStockUseCase(t *testing.T) {
	t.Run("creates the ledger row", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		uc := NewCreateStockUseCase(f.productRepo, f.stockRepo)

		record, err := uc.Execute(context.Background(), CreateStockRequest{
			ProductID:         p.ID,
			AvailableQuantity: 10,
		})
		require.NoError(t, err)
		assert.NotZero(t, record.ID)
		assert.Equal(t, 10, record.AvailableQuantity)
		assert.Equal(t, 0, record.ReservedQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newStockFixture(t)
		uc := NewCreateStockUseCase(f.productRepo, f.stockRepo)

		_, err := uc.Execute(context.Background(), CreateStockRequest{ProductID: 99})
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("duplicate ledger row", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 10)
		uc := NewCreateStockUseCase(f.productRepo, f.stockRepo)

		_, err := uc.Execute(context.Background(), CreateStockRequest{ProductID: p.ID})
		assert.ErrorIs(t, err, stock.ErrStockAlreadyExists)
	})

	t.Run("negative initial counters", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		uc := NewCreateStockUseCase(f.productRepo, f.stockRepo)

		_, err := uc.Execute(context.Background(), CreateStockRequest{
			ProductID:         p.ID,
			AvailableQuantity: -1,
		})
		assert.ErrorIs(t, err, stock.ErrInvalidQuantity)
	})
}

func TestAddStockUseCase(t *testing.T) {
	t.Run("restocks available units", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 10)
		uc := NewAddStockUseCase(f.stockRepo, f.txManager)

		record, err := uc.Execute(context.Background(), AddStockRequest{
			ProductID: p.ID,
			Quantity:  5,
		})
		require.NoError(t, err)
		assert.Equal(t, 15, record.AvailableQuantity)

		persisted, err := f.stockRepo.FindByProductID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, persisted.AvailableQuantity)
	})

	t.Run("rejects non-positive quantity before loading", func(t *testing.T) {
		f := newStockFixture(t)
		uc := NewAddStockUseCase(f.stockRepo, f.txManager)

		_, err := uc.Execute(context.Background(), AddStockRequest{ProductID: 1, Quantity: 0})
		assert.ErrorIs(t, err, stock.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newStockFixture(t)
		uc := NewAddStockUseCase(f.stockRepo, f.txManager)

		_, err := uc.Execute(context.Background(), AddStockRequest{ProductID: 99, Quantity: 5})
		assert.ErrorIs(t, err, stock.ErrStockNotFound)
	})
}

func TestReserveStockUseCase(t *testing.T) {
	t.Run("moves units to reserved", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 10)
		uc := NewReserveStockUseCase(f.stockRepo, f.txManager)

		record, err := uc.Execute(context.Background(), ReserveStockRequest{
			ProductID: p.ID,
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, record.AvailableQuantity)
		assert.Equal(t, 3, record.ReservedQuantity)
	})

	t.Run("insufficient available leaves counters untouched", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 2)
		uc := NewReserveStockUseCase(f.stockRepo, f.txManager)

		_, err := uc.Execute(context.Background(), ReserveStockRequest{
			ProductID: p.ID,
			Quantity:  3,
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientAvailable, appErr.Code)

		persisted, err := f.stockRepo.FindByProductID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, persisted.AvailableQuantity)
		assert.Equal(t, 0, persisted.ReservedQuantity)
	})
}

func TestConfirmReservationUseCase(t *testing.T) {
	t.Run("consumes reserved units", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 10)

		reserve := NewReserveStockUseCase(f.stockRepo, f.txManager)
		_, err := reserve.Execute(context.Background(), ReserveStockRequest{ProductID: p.ID, Quantity: 3})
		require.NoError(t, err)

		confirm := NewConfirmReservationUseCase(f.stockRepo, f.txManager)
		record, err := confirm.Execute(context.Background(), ConfirmReservationRequest{
			ProductID: p.ID,
			Quantity:  2,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, record.AvailableQuantity)
		assert.Equal(t, 1, record.ReservedQuantity)
	})

	t.Run("confirming more than reserved fails", func(t *testing.T) {
		f := newStockFixture(t)
		p := f.seedProduct(t)
		f.seedStock(t, p.ID, 10)

		confirm := NewConfirmReservationUseCase(f.stockRepo, f.txManager)
		_, err := confirm.Execute(context.Background(), ConfirmReservationRequest{
			ProductID: p.ID,
			Quantity:  1,
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientReserved, appErr.Code)
	})
}

func TestGetStockUseCase(t *testing.T) {
	f := newStockFixture(t)
	p := f.seedProduct(t)
	f.seedStock(t, p.ID, 10)
	uc := NewGetStockUseCase(f.stockRepo)

	record, err := uc.Execute(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, record.AvailableQuantity)

	_, err = uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, stock.ErrStockNotFound)
}
