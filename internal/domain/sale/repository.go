package sale

import (
	"context"
)

// Repository is the sale storage port. Sales load with their items; a
// sale's totals and status plus its item rows must be written in the
// same transaction, which the TxManager provides via context.
type Repository interface {
	// Create persists a new draft and fills in its id.
	Create(ctx context.Context, sale *Sale) error

	// FindByID returns the sale with items, or ErrSaleNotFound.
	FindByID(ctx context.Context, id uint) (*Sale, error)

	// LockByID is FindByID with an exclusive row lock on the sale,
	// serializing concurrent mutations of the same order.
	LockByID(ctx context.Context, id uint) (*Sale, error)

	// Update persists totals, status and finished_at.
	Update(ctx context.Context, sale *Sale) error

	// AddItem inserts one line and fills in its id.
	AddItem(ctx context.Context, item *Item) error

	// RemoveItem deletes one line of the sale.
	RemoveItem(ctx context.Context, saleID, itemID uint) error

	// ListByStoreID returns a page of a store's sales plus the total
	// count, newest first.
	ListByStoreID(ctx context.Context, storeID uint, page, pageSize int) ([]*Sale, int64, error)
}
