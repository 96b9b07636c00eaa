package product

import (
	"context"
)

// Repository is the catalog storage port. The domain layer defines the
// interface; infrastructure provides the MySQL and in-memory
// implementations.
type Repository interface {
	// Create persists a new product and fills in its id.
	Create(ctx context.Context, product *Product) error

	// FindByID returns the product or ErrProductNotFound.
	FindByID(ctx context.Context, id uint) (*Product, error)

	// Update persists changed product fields.
	Update(ctx context.Context, product *Product) error

	// List returns a page of a store's products plus the total count.
	List(ctx context.Context, params ListParams) ([]*Product, int64, error)
}

// ListParams filters and pages the product list.
type ListParams struct {
	StoreID  uint
	Page     int
	PageSize int
	// OnlyActive restricts the list to sellable products.
	OnlyActive bool
}
