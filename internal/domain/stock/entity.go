package stock

import (
	"time"
)

// Record is the per-product stock ledger row. AvailableQuantity counts
// sellable units not promised to any sale; ReservedQuantity counts
// units provisionally held by in-progress sales. Confirming a
// reservation consumes the units, so they leave the ledger entirely.
// Both counters are invariant-checked to never go negative; each
// product has at most one Record.
type Record struct {
	ID                uint
	ProductID         uint
	AvailableQuantity int
	ReservedQuantity  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewRecord creates a ledger row with initial counters.
func NewRecord(productID uint, available, reserved int) (*Record, error) {
	if available < 0 || reserved < 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now()
	return &Record{
		ProductID:         productID,
		AvailableQuantity: available,
		ReservedQuantity:  reserved,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Add restocks available units.
func (r *Record) Add(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.AvailableQuantity += quantity
	r.UpdatedAt = time.Now()
	return nil
}

// Reserve moves units from available to reserved as one counter move,
// so the ledger always reflects true sellable inventory while several
// sales hold partial stock.
func (r *Record) Reserve(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.AvailableQuantity < quantity {
		return NewInsufficientAvailableError(r.AvailableQuantity, quantity)
	}
	r.AvailableQuantity -= quantity
	r.ReservedQuantity += quantity
	r.UpdatedAt = time.Now()
	return nil
}

// Confirm consumes previously reserved units (payment captured).
// Available is untouched: confirmed stock leaves the ledger.
func (r *Record) Confirm(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.ReservedQuantity < quantity {
		return NewInsufficientReservedError(r.ReservedQuantity, quantity)
	}
	r.ReservedQuantity -= quantity
	r.UpdatedAt = time.Now()
	return nil
}
