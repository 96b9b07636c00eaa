package stock

import (
	"context"
	"errors"

	"github.com/payflow/storepos/internal/domain/product"
	"github.com/payflow/storepos/internal/domain/stock"
)

// CreateStockUseCase opens the ledger row for a product. A product has
// at most one row; creation is gated on the product existing in the
// catalog.
type CreateStockUseCase struct {
	productRepo product.Repository
	stockRepo   stock.Repository
}

// NewCreateStockUseCase wires the use case.
func NewCreateStockUseCase(productRepo product.Repository, stockRepo stock.Repository) *CreateStockUseCase {
	return &CreateStockUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// CreateStockRequest carries the initial counters.
type CreateStockRequest struct {
	ProductID         uint
	AvailableQuantity int
	ReservedQuantity  int
}

// Execute creates the row, failing with ErrProductNotFound for unknown
// products and ErrStockAlreadyExists for duplicates. The repository's
// unique index on product_id backs the existence check against
// concurrent creation.
func (uc *CreateStockUseCase) Execute(ctx context.Context, req CreateStockRequest) (*stock.Record, error) {
	if _, err := uc.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	_, err := uc.stockRepo.FindByProductID(ctx, req.ProductID)
	if err == nil {
		return nil, stock.ErrStockAlreadyExists
	}
	if !errors.Is(err, stock.ErrStockNotFound) {
		return nil, err
	}

	record, err := stock.NewRecord(req.ProductID, req.AvailableQuantity, req.ReservedQuantity)
	if err != nil {
		return nil, err
	}

	if err := uc.stockRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
