package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// WithDetails returns a copy carrying details. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}, origin: e}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"An order needs at least one item",
		"",
	)

	ErrInvalidDeliveryDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DELIVERY_DATE",
		"Delivery date cannot be earlier than today",
		"",
	)

	ErrPriceMismatch = NewBaseError(
		http.StatusBadRequest,
		"PRICE_MISMATCH",
		"Service price has changed, refresh the cart and try again",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password is too short",
		"",
	)

	// Kept at 400 for compatibility with existing clients.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email is already used by another account",
		"",
	)

	// Authentication and authorization
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Caller identity is missing",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Admin role required",
		"",
	)

	ErrAdminCartForbidden = NewBaseError(
		http.StatusForbidden,
		"ADMIN_CART_FORBIDDEN",
		"Administrators cannot add items to a cart",
		"",
	)

	ErrAdminOrderForbidden = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ORDER_FORBIDDEN",
		"Administrators cannot place orders",
		"",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Conflicts
	ErrCategoryExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_EXISTS",
		"A category with this name already exists",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"Category still has services",
		"",
	)

	ErrServiceInUse = NewBaseError(
		http.StatusConflict,
		"SERVICE_IN_USE",
		"Service is referenced by existing orders",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, slow down",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
