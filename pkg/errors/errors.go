package errors

import (
	"errors"
	"fmt"
)

// AppError is the application-wide error type.
// Code is a business error code for clients (not an HTTP status);
// Message is safe to show to callers; Err is the internal cause and
// is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a business code.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap converts a low-level error (database, broker, network) into an
// internal AppError, hiding the cause from clients.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Business error codes.
// 4xxxx: client-side (validation, business rules, missing resources)
// 5xxxx: server-side (database, cache, broker)
const (
	// System errors (50000-50099)
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002
	ErrCodePublishError  = 50003

	// Auth errors (40100-40199)
	ErrCodeUnauthorized = 40100
	ErrCodeInvalidToken = 40101
	ErrCodeTokenExpired = 40102
	ErrCodeForbidden    = 40104

	// Missing resources (40400-40499)
	ErrCodeNotFound         = 40400
	ErrCodeProductNotFound  = 40401
	ErrCodeStockNotFound    = 40402
	ErrCodeSaleNotFound     = 40403
	ErrCodeSaleItemNotFound = 40404

	// Conflicts (40900-40999)
	ErrCodeDuplicateEntry     = 40900
	ErrCodeStockAlreadyExists = 40901

	// Business rules (40000-40099)
	ErrCodeBusinessError         = 40000
	ErrCodeInsufficientAvailable = 40001
	ErrCodeInsufficientReserved  = 40002
	ErrCodeSaleNotInDraft        = 40003
	ErrCodeSaleWithoutItems      = 40004
	ErrCodeSaleInvalidTotal      = 40005

	// Parameter errors (42200-42299)
	ErrCodeInvalidParams   = 42200
	ErrCodeBindError       = 42201
	ErrCodeInvalidQuantity = 42202
	ErrCodeInvalidDiscount = 42203
	ErrCodeInvalidPrice    = 42204
)

// Predefined errors shared across layers. Domain packages define their
// own sentinels on top of these codes.
var (
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrRedisError    = New(ErrCodeRedisError, "cache service error")

	ErrUnauthorized = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken = New(ErrCodeInvalidToken, "invalid token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "token expired")
	ErrForbidden    = New(ErrCodeForbidden, "access denied")

	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "malformed request body")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors
// as internal so handlers never leak raw causes.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}
