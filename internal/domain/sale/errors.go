package sale

import (
	apperrors "github.com/payflow/storepos/pkg/errors"
)

var (
	// ErrSaleNotFound is returned when the sale id is unknown.
	ErrSaleNotFound = apperrors.New(apperrors.ErrCodeSaleNotFound, "sale not found")

	// ErrSaleItemNotFound is returned when the line does not exist or
	// belongs to a different sale.
	ErrSaleItemNotFound = apperrors.New(apperrors.ErrCodeSaleItemNotFound, "sale item not found")

	// ErrSaleNotInDraftStatus rejects mutations after checkout.
	ErrSaleNotInDraftStatus = apperrors.New(apperrors.ErrCodeSaleNotInDraft, "sale is not in draft status")

	// ErrSaleWithoutItems rejects checkout of an empty sale.
	ErrSaleWithoutItems = apperrors.New(apperrors.ErrCodeSaleWithoutItems, "sale has no items")

	// ErrSaleWithInvalidTotal rejects checkout when total <= 0.
	ErrSaleWithInvalidTotal = apperrors.New(apperrors.ErrCodeSaleInvalidTotal, "sale total must be greater than 0")

	// ErrInvalidQuantity rejects non-positive line quantities.
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "quantity must be greater than 0")

	// ErrInvalidUnitPrice rejects negative unit prices.
	ErrInvalidUnitPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "unit price must not be negative")

	// ErrInvalidDiscount rejects negative discounts and discounts
	// above the subtotal.
	ErrInvalidDiscount = apperrors.New(apperrors.ErrCodeInvalidDiscount, "discount must be between 0 and subtotal")
)
