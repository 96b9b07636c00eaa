package sale

import (
	"context"

	"github.com/payflow/storepos/internal/domain/sale"
)

// ListSalesUseCase pages through a store's sales, newest first.
type ListSalesUseCase struct {
	saleRepo sale.Repository
}

// NewListSalesUseCase wires the use case.
func NewListSalesUseCase(saleRepo sale.Repository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// ListSalesRequest carries pagination. Page is 1-based.
type ListSalesRequest struct {
	StoreID  uint
	Page     int
	PageSize int
}

// Execute normalizes pagination and delegates to the repository.
func (uc *ListSalesUseCase) Execute(ctx context.Context, req ListSalesRequest) ([]*sale.Sale, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}
	return uc.saleRepo.ListByStoreID(ctx, req.StoreID, req.Page, req.PageSize)
}
