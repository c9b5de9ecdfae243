package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidCurrency     = 4002
	CodeInvalidIdentifier   = 4003
	CodeInvalidEvent        = 4004
	CodeSignatureInvalid    = 4010
	CodeUnauthorized        = 4030
	CodeTransactionNotFound = 4040

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodePersistenceFailure  = 5010
	CodeUpstreamUnavailable = 5020
)

// Base error types
var (
	// ErrInvalidAmount is returned when the amount is missing, zero or negative
	ErrInvalidAmount = errors.New("amount must be a positive number of minor units")

	// ErrInvalidCurrency is returned when the currency code is malformed
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidIdentifier is returned when a lookup identifier is empty or unusable
	ErrInvalidIdentifier = errors.New("identifier cannot be empty")

	// ErrInvalidEvent is returned when an event envelope carries no usable correlation key
	ErrInvalidEvent = errors.New("event carries no correlation identifier")

	// ErrTransactionNotFound is returned when no record matches the supplied identifier
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnauthorized is returned when an administrative operation lacks a valid key
	ErrUnauthorized = errors.New("administrative key missing or invalid")

	// ErrSignatureInvalid is returned when an event envelope fails the authenticity check
	ErrSignatureInvalid = errors.New("event signature verification failed")

	// ErrUpstreamUnavailable is returned when a call to the payment processor fails or times out
	ErrUpstreamUnavailable = errors.New("payment processor request failed")

	// ErrDatabaseConnection is returned when a store read or write fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCurrency):
		return CodeInvalidCurrency
	case errors.Is(err, ErrInvalidIdentifier):
		return CodeInvalidIdentifier
	case errors.Is(err, ErrInvalidEvent):
		return CodeInvalidEvent
	case errors.Is(err, ErrSignatureInvalid):
		return CodeSignatureInvalid
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodePersistenceFailure
	default:
		return CodeInternalServer
	}
}

// EventError carries the identifiers of a lifecycle event whose
// application failed, for structured logging and wrapping.
type EventError struct {
	Kind        string
	ExternalRef string
	LocalRef    string
	Err         error
}

// Error implements the error interface for EventError
func (e *EventError) Error() string {
	return fmt.Sprintf("event %s (external_ref: %s, local_ref: %s) failed: %v",
		e.Kind, e.ExternalRef, e.LocalRef, e.Err)
}

// Unwrap returns the underlying error
func (e *EventError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *EventError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "event_error",
		"event_kind":   e.Kind,
		"external_ref": e.ExternalRef,
		"local_ref":    e.LocalRef,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewEventError wraps an event application failure with its identifiers
func NewEventError(kind, externalRef, localRef string, err error) error {
	return &EventError{
		Kind:        kind,
		ExternalRef: externalRef,
		LocalRef:    localRef,
		Err:         err,
	}
}

// UpstreamError describes a failed call to the external payment processor
type UpstreamError struct {
	Operation   string
	ExternalRef string
	Err         error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed for %s: %v", e.Operation, e.ExternalRef, e.Err)
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the upstream sentinel
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "upstream_error",
		"operation":    e.Operation,
		"external_ref": e.ExternalRef,
		"error":        e.Err.Error(),
		"error_code":   CodeUpstreamUnavailable,
	}
}

// NewUpstreamError wraps a failed processor call
func NewUpstreamError(operation, externalRef string, err error) error {
	return &UpstreamError{
		Operation:   operation,
		ExternalRef: externalRef,
		Err:         err,
	}
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error is a client input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrInvalidIdentifier) ||
		errors.Is(err, ErrInvalidEvent)
}

// IsUnauthorizedError checks if the error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUpstreamError checks if the error comes from the payment processor boundary
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsPersistenceError checks if the error comes from the store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

// IsSignatureError checks if the error is an envelope authenticity failure
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrSignatureInvalid)
}
