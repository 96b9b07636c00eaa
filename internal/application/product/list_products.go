package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// ListProductsUseCase pages through a store's catalog.
type ListProductsUseCase struct {
	productRepo product.Repository
}

// NewListProductsUseCase wires the use case.
func NewListProductsUseCase(productRepo product.Repository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// ListProductsRequest carries filters and pagination. Page is 1-based.
type ListProductsRequest struct {
	StoreID    uint
	Page       int
	PageSize   int
	OnlyActive bool
}

// Execute normalizes pagination and delegates to the repository.
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) ([]*product.Product, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	return uc.productRepo.List(ctx, product.ListParams{
		StoreID:    req.StoreID,
		Page:       req.Page,
		PageSize:   req.PageSize,
		OnlyActive: req.OnlyActive,
	})
}
