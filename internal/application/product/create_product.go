package product

import (
	"context"

	"github.com/payflow/storepos/internal/domain/product"
)

// CreateProductUseCase registers a product in a store's catalog.
type CreateProductUseCase struct {
	productRepo product.Repository
}

// NewCreateProductUseCase wires the use case.
func NewCreateProductUseCase(productRepo product.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// CreateProductRequest carries the catalog entry. Price is in minor
// currency units.
type CreateProductRequest struct {
	StoreID     uint
	Name        string
	Description string
	Price       int64
	IsActive    bool
	SKU         string
}

// Execute builds the product and persists it. SKU uniqueness is
// enforced by the repository.
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	p, err := product.NewProduct(req.StoreID, req.Name, req.Description, req.Price, req.IsActive, req.SKU)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
