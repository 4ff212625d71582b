// Package errors provides standardized error definitions for the OpenMusic API.
package errors

import (
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error with details attached.
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy of the error wrapping another error.
func (e *Error) WithError(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

// WithMessage returns a copy of the error with a different user-facing message.
// The code and HTTP status are preserved, so classification checks still match.
func (e *Error) WithMessage(message string) *Error {
	clone := *e
	clone.Message = message
	return &clone
}

// New creates a new Error.
func New(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an existing error with error code and message.
func Wrap(err error, code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Common error codes
const (
	// General errors
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"

	// Domain error classes. Every client-attributable failure carries one
	// of these three codes: the entity is absent, the caller lacks rights,
	// or a write precondition/postcondition was violated.
	ErrCodeNotFound  = "NOT_FOUND"
	ErrCodeForbidden = "FORBIDDEN"
	ErrCodeInvariant = "INVARIANT_VIOLATION"

	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"

	// Validation errors
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"

	// Service errors
	ErrCodeDatabaseError = "DATABASE_ERROR"
	ErrCodeCacheError    = "CACHE_ERROR"
	ErrCodeQueueError    = "QUEUE_ERROR"
	ErrCodeStorageError  = "STORAGE_ERROR"
)

// Predefined errors
var (
	ErrInternal        = New(ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
	ErrInvalidRequest  = New(ErrCodeInvalidRequest, "Invalid request", http.StatusBadRequest)
	ErrTooManyRequests = New(ErrCodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)

	ErrNotFound  = New(ErrCodeNotFound, "Resource not found", http.StatusNotFound)
	ErrForbidden = New(ErrCodeForbidden, "You are not eligible to access this resource", http.StatusForbidden)
	ErrInvariant = New(ErrCodeInvariant, "Operation violated a data invariant", http.StatusBadRequest)
)

var (
	// Authentication errors
	ErrUnauthorized       = New(ErrCodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Token has expired", http.StatusUnauthorized)
	ErrTokenInvalid       = New(ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized)
)

var (
	// Validation errors
	ErrValidationFailed = New(ErrCodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidInput     = New(ErrCodeInvalidInput, "Invalid input", http.StatusBadRequest)
)

var (
	// Service errors
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error", http.StatusInternalServerError)
	ErrCacheError    = New(ErrCodeCacheError, "Cache error", http.StatusInternalServerError)
	ErrQueueError    = New(ErrCodeQueueError, "Message queue error", http.StatusInternalServerError)
	ErrStorageError  = New(ErrCodeStorageError, "File storage error", http.StatusInternalServerError)
)

// NotFound creates a NotFound error with a resource-specific message.
func NotFound(message string) *Error {
	return New(ErrCodeNotFound, message, http.StatusNotFound)
}

// Forbidden creates a Forbidden error with a resource-specific message.
func Forbidden(message string) *Error {
	return New(ErrCodeForbidden, message, http.StatusForbidden)
}

// Invariant creates an Invariant error with an operation-specific message.
func Invariant(message string) *Error {
	return New(ErrCodeInvariant, message, http.StatusBadRequest)
}

// IsError checks if an error is a specific application error.
func IsError(err error, target *Error) bool {
	if err == nil {
		return false
	}
	appErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return appErr.Code == target.Code
}

// IsNotFound reports whether the error is classified as NotFound.
func IsNotFound(err error) bool {
	return IsError(err, ErrNotFound)
}

// IsForbidden reports whether the error is classified as Forbidden.
func IsForbidden(err error) bool {
	return IsError(err, ErrForbidden)
}

// IsInvariant reports whether the error is classified as Invariant.
func IsInvariant(err error) bool {
	return IsError(err, ErrInvariant)
}

// IsDomain reports whether the error belongs to the client-attributable
// domain taxonomy (NotFound, Forbidden or Invariant).
func IsDomain(err error) bool {
	return IsNotFound(err) || IsForbidden(err) || IsInvariant(err)
}

// GetHTTPStatus returns the HTTP status code for an error.
// If the error is not an *Error, returns 500.
func GetHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus
}

// GetCode returns the error code for an error.
// If the error is not an *Error, returns INTERNAL_ERROR.
func GetCode(err error) string {
	if err == nil {
		return ""
	}
	appErr, ok := err.(*Error)
	if !ok {
		return ErrCodeInternal
	}
	return appErr.Code
}
