// Package errors provides the error types used across the storefront views.
// Fetch failures of every origin are normalized into a single FetchError shape
// that always carries a user-facing message, so view state never has to tell
// transport problems apart from application problems.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the storefront system
var (
	// ErrNotFound indicates that a requested resource or route was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork indicates the catalog API could not be reached
	ErrNetwork = errors.New("network failure")

	// ErrApplication indicates the catalog API answered with a non-success status
	ErrApplication = errors.New("application failure")

	// ErrMalformedResponse indicates a success response whose body could not be decoded
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnavailable indicates the catalog API answered with a 5xx status
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrNotImplemented indicates that a feature is not yet implemented
	ErrNotImplemented = errors.New("not implemented")
)

// Kind classifies where a fetch failure originated.
type Kind int

const (
	// KindNetwork is a transport-level failure reaching the API.
	KindNetwork Kind = iota
	// KindApplication is a non-success HTTP status from a reachable API.
	KindApplication
	// KindDecode is a success status with an undecodable body.
	KindDecode
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindApplication:
		return "application"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is the single failure shape produced by catalog fetches.
type FetchError struct {
	Resource   string // "products", "categories", "product"
	Kind       Kind
	StatusCode int    // HTTP status for KindApplication, zero otherwise
	Message    string // user-facing message, never empty
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s (status %d): %s", e.Resource, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Resource, e.Message, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrApplication:
		return e.Kind == KindApplication
	case ErrMalformedResponse:
		return e.Kind == KindDecode
	case ErrUnavailable:
		return e.StatusCode >= 500
	case ErrNotFound:
		return e.StatusCode == 404
	}
	return false
}

// NewNetworkError creates a FetchError for a transport failure.
func NewNetworkError(resource, message string, err error) *FetchError {
	return &FetchError{Resource: resource, Kind: KindNetwork, Message: message, Err: err}
}

// NewApplicationError creates a FetchError for a non-success HTTP status.
func NewApplicationError(resource string, statusCode int, message string) *FetchError {
	return &FetchError{Resource: resource, Kind: KindApplication, StatusCode: statusCode, Message: message}
}

// NewDecodeError creates a FetchError for an undecodable success body.
func NewDecodeError(resource, message string, err error) *FetchError {
	return &FetchError{Resource: resource, Kind: KindDecode, Message: message, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// RouteError reports a navigation to a path the router cannot serve.
type RouteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *RouteError) Error() string {
	return fmt.Sprintf("route %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RouteError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message for err.
// FetchError messages are returned verbatim; anything else falls back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return err.Error()
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNetwork checks if an error is a transport failure
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsApplication checks if an error is a non-success API response
func IsApplication(err error) bool {
	return errors.Is(err, ErrApplication)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
