// Package apperr defines the stable error taxonomy of the registry and
// its mapping onto HTTP status codes. Error codes are string-based for
// debuggability and natural JSON serialization.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies one failure kind in the registry taxonomy.
type Code string

const (
	// CodeValidationFailed indicates malformed or missing required input.
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// CodeUnauthenticated is reserved; nothing raises it today.
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// CodeRBACDenied is reserved; the rbac check endpoint reports
	// allow/deny in-band rather than failing the request.
	CodeRBACDenied Code = "RBAC_DENIED"

	// CodeNotFound indicates the referenced entity does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeConflict indicates an illegal state transition or duplicate.
	CodeConflict Code = "CONFLICT"

	// CodeRateLimited is reserved, unused.
	CodeRateLimited Code = "RATE_LIMITED"

	// CodeInternal indicates a store failure or unexpected error.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a taxonomy code alongside a diagnostic message.
// The message may include underlying store error text; it is surfaced
// only inside the envelope's error.message field.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs a taxonomy error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy code to an underlying error.
func Wrap(code Code, err error, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the taxonomy code from err, defaulting to
// CodeInternal for anything unclassified.
func CodeOf(err error) Code {
	var apperr *Error
	if errors.As(err, &apperr) {
		return apperr.Code
	}
	return CodeInternal
}

// MessageOf extracts the diagnostic message from err.
func MessageOf(err error) string {
	var apperr *Error
	if errors.As(err, &apperr) {
		if apperr.Err != nil {
			return fmt.Sprintf("%s: %v", apperr.Message, apperr.Err)
		}
		return apperr.Message
	}
	return err.Error()
}

// HTTPStatus maps a taxonomy code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeRBACDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
