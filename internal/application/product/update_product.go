package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// UpdateProductUseCase edits a product's info and price.
type UpdateProductUseCase struct {
	productRepo product.Repository
}

// NewUpdateProductUseCase wires the use case.
func NewUpdateProductUseCase(productRepo product.Repository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// UpdateProductRequest carries the new values. Name and Description
// are skipped when empty; Price applies when non-nil.
type UpdateProductRequest struct {
	ProductID   uint
	Name        string
	Description string
	Price       *int64
}

// Execute loads, mutates, and persists the product.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, req UpdateProductRequest) (*product.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	p.UpdateInfo(req.Name, req.Description)
	if req.Price != nil {
		if err := p.UpdatePrice(*req.Price); err != nil {
			return nil, err
		}
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
