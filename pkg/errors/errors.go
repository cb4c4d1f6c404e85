package errors

import (
	"errors"
	"fmt"
)

// Error classes shared by services and handlers.

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingFields indicates one or more required contact fields are empty
	ErrMissingFields = fmt.Errorf("missing required fields: %w", ErrInvalidInput)

	// ErrInvalidEmail indicates the email address failed the format check
	ErrInvalidEmail = fmt.Errorf("invalid email address: %w", ErrInvalidInput)

	// ErrCaptcha indicates the captcha token was missing or rejected
	ErrCaptcha = fmt.Errorf("captcha verification failed: %w", ErrInvalidInput)

	// ErrUpstreamRejected indicates the email provider answered but refused the message
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrUpstreamUnavailable indicates the email provider could not be reached or
	// returned something that could not be understood
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// ProviderError carries what an upstream provider said when it refused a request.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrUpstreamRejected.
func (e *ProviderError) Unwrap() error {
	return ErrUpstreamRejected
}

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// UnavailableError wraps a transport-level failure
func UnavailableError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrUpstreamUnavailable, err)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
