package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// GetSaleUseCase loads a sale with its items.
type GetSaleUseCase struct {
	saleRepo sale.Repository
}

// NewGetSaleUseCase wires the use case.
func NewGetSaleUseCase(saleRepo sale.Repository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute reads without locking.
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uint) (*sale.Sale, error) {
	return uc.saleRepo.FindByID(ctx, saleID)
}
