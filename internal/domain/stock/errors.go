package stock

import (
	"fmt"

	apperrors "github.com/payflow/storepos/pkg/errors"
)

var (
	// ErrStockNotFound is returned when no ledger row exists for the
	// product.
	ErrStockNotFound = apperrors.New(apperrors.ErrCodeStockNotFound, "stock record not found")

	// ErrStockAlreadyExists rejects a second ledger row for the same
	// product.
	ErrStockAlreadyExists = apperrors.New(apperrors.ErrCodeStockAlreadyExists, "stock record already exists for product")

	// ErrInvalidQuantity rejects zero/negative adjustment quantities
	// and negative initial counters.
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "quantity must be greater than 0")
)

// NewInsufficientAvailableError reports a reservation exceeding the
// available counter, carrying both values for the caller.
func NewInsufficientAvailableError(available, requested int) *apperrors.AppError {
	return apperrors.New(
		apperrors.ErrCodeInsufficientAvailable,
		fmt.Sprintf("insufficient available quantity: available %d, requested %d", available, requested),
	)
}

// NewInsufficientReservedError reports a confirmation exceeding the
// reserved counter.
func NewInsufficientReservedError(reserved, requested int) *apperrors.AppError {
	return apperrors.New(
		apperrors.ErrCodeInsufficientReserved,
		fmt.Sprintf("insufficient reserved quantity: reserved %d, requested %d", reserved, requested),
	)
}
