package product

import (
	apperrors "github.com/payflow/storepos/pkg/errors"
)

var (
	// ErrProductNotFound is returned when the referenced product does
	// not exist.
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "product not found")

	// ErrInvalidPrice rejects negative prices.
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "price must not be negative")

	// ErrSKUDuplicate is returned when the SKU already exists within
	// the store.
	ErrSKUDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "sku already exists")
)
