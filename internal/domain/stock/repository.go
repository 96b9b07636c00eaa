package stock

import (
	"context"
)

// Repository is the stock ledger storage port.
//
// Every read-validate-write sequence on a Record must run against one
// consistent snapshot: mutating use cases call LockByProductID inside a
// transaction so two concurrent reservations cannot both pass the
// availability check against stale counters.
type Repository interface {
	// Create persists a new ledger row and fills in its id. Returns
	// ErrStockAlreadyExists when the product already has one.
	Create(ctx context.Context, record *Record) error

	// FindByProductID returns the row or ErrStockNotFound.
	FindByProductID(ctx context.Context, productID uint) (*Record, error)

	// LockByProductID is FindByProductID with an exclusive row lock,
	// held until the surrounding transaction ends.
	LockByProductID(ctx context.Context, productID uint) (*Record, error)

	// Update persists the counters of an existing row.
	Update(ctx context.Context, record *Record) error
}
