package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// DeactivateProductUseCase takes a product off sale. Existing sale
// lines referencing it keep their snapshot price.
type DeactivateProductUseCase struct {
	productRepo product.Repository
}

// NewDeactivateProductUseCase wires the use case.
func NewDeactivateProductUseCase(productRepo product.Repository) *DeactivateProductUseCase {
	return &DeactivateProductUseCase{productRepo: productRepo}
}

// Execute loads the product, flips it inactive, and persists.
func (uc *DeactivateProductUseCase) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	p.Deactivate()

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
