package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// ActivateProductUseCase puts a product back on sale.
type ActivateProductUseCase struct {
	productRepo product.Repository
}

// NewActivateProductUseCase wires the use case.
func NewActivateProductUseCase(productRepo product.Repository) *ActivateProductUseCase {
	return &ActivateProductUseCase{productRepo: productRepo}
}

// Execute loads the product, flips it active, and persists. Activating
// an already active product is a no-op write.
func (uc *ActivateProductUseCase) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	p.Activate()

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
