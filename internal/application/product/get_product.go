package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// GetProductUseCase loads a single catalog entry.
type GetProductUseCase struct {
	productRepo product.Repository
}

// NewGetProductUseCase wires the use case.
func NewGetProductUseCase(productRepo product.Repository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute reads by primary key.
func (uc *GetProductUseCase) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	return uc.productRepo.FindByID(ctx, productID)
}
