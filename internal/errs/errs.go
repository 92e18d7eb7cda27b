// Package errs defines the error taxonomy shared across the core services.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a plan, list or recipe does not exist for the
	// given key. Callers treat it as a negative result, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCatalog signals that no recipes exist at all, so no plan can be
	// built. This is the one generation failure that propagates to the caller.
	ErrEmptyCatalog = errors.New("recipe catalog is empty")

	// ErrExternalUnavailable signals that an external recipe source could not
	// be used (no key, network failure, timeout, malformed response). Callers
	// always recover by falling back to local computation.
	ErrExternalUnavailable = errors.New("external source unavailable")
)

// ValidationError reports invalid caller input. It is surfaced as-is and
// never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a named input field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Unavailable wraps a cause so that errors.Is(err, ErrExternalUnavailable)
// holds while the original failure stays inspectable.
func Unavailable(cause error) error {
	if cause == nil {
		return ErrExternalUnavailable
	}
	return fmt.Errorf("%w: %w", ErrExternalUnavailable, cause)
}

// Unavailablef is Unavailable with a formatted reason instead of a cause.
func Unavailablef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExternalUnavailable, fmt.Sprintf(format, args...))
}
