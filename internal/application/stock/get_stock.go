package stock

import (
	"context"

	"github.com/payflow/storepos/internal/domain/stock"
)

// GetStockUseCase is the read side of the ledger. It never mutates.
type GetStockUseCase struct {
	stockRepo stock.Repository
}

// NewGetStockUseCase wires the use case.
func NewGetStockUseCase(stockRepo stock.Repository) *GetStockUseCase {
	return &GetStockUseCase{stockRepo: stockRepo}
}

// Execute returns the ledger row for the product, or ErrStockNotFound.
func (uc *GetStockUseCase) Execute(ctx context.Context, productID uint) (*stock.Record, error) {
	return uc.stockRepo.FindByProductID(ctx, productID)
}
