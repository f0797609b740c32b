package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business error code, so copies produced
// by WithDetails still compare equal to their sentinel.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if !errors.As(target, &appErr) {
		return false
	}

	return e.errorCode == appErr.ErrorCode()
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"The product you're looking for could not be found",
		"",
	)

	ErrContactUnavailable = NewBaseError(
		http.StatusConflict,
		"CONTACT_UNAVAILABLE",
		"No contact channel is configured",
		"",
	)

	ErrCatalogNotReady = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_NOT_READY",
		"The catalog is still loading, please retry",
		"",
	)

	// Admin-related errors
	ErrConfirmationRequired = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_REQUIRED",
		"This operation requires explicit confirmation",
		"",
	)

	ErrUnknownCollection = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_COLLECTION",
		"Unknown export collection",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid operator password",
		"",
	)

	ErrAdminDisabled = NewBaseError(
		http.StatusForbidden,
		"ADMIN_DISABLED",
		"The admin surface is not configured",
		"",
	)
)
