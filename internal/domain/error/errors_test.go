package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidAmount.Error() != "amount must be a positive number of minor units" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InvalidCurrency", ErrInvalidCurrency, 4002},
		{"InvalidIdentifier", ErrInvalidIdentifier, 4003},
		{"InvalidEvent", ErrInvalidEvent, 4004},
		{"SignatureInvalid", ErrSignatureInvalid, 4010},
		{"Unauthorized", ErrUnauthorized, 4030},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"UpstreamUnavailable", ErrUpstreamUnavailable, 5020},
		{"DatabaseConnection", ErrDatabaseConnection, 5010},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTransactionNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestEventError(t *testing.T) {
	baseErr := ErrTransactionNotFound
	eventErr := &EventError{
		Kind:        "payment.succeeded",
		ExternalRef: "pi_123",
		LocalRef:    "local-1",
		Err:         baseErr,
	}

	// Test Error method
	expectedErrMsg := "event payment.succeeded (external_ref: pi_123, local_ref: local-1) failed: transaction not found"
	if eventErr.Error() != expectedErrMsg {
		t.Errorf("EventError.Error() = %s, want %s", eventErr.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(eventErr, baseErr) {
		t.Errorf("errors.Is(eventErr, baseErr) = false, want true")
	}

	// Test LogFields method
	fields := eventErr.LogFields()
	if fields["event_kind"] != "payment.succeeded" {
		t.Errorf("LogFields event_kind = %v, want payment.succeeded", fields["event_kind"])
	}
	if fields["error_code"] != 4040 {
		t.Errorf("LogFields error_code = %v, want 4040", fields["error_code"])
	}
}

func TestUpstreamError(t *testing.T) {
	baseErr := errors.New("connection refused")
	upstreamErr := &UpstreamError{
		Operation:   "create_refund",
		ExternalRef: "pi_123",
		Err:         baseErr,
	}

	expectedErrMsg := "upstream create_refund failed for pi_123: connection refused"
	if upstreamErr.Error() != expectedErrMsg {
		t.Errorf("UpstreamError.Error() = %s, want %s", upstreamErr.Error(), expectedErrMsg)
	}

	// Any upstream error matches the sentinel through Is
	if !errors.Is(upstreamErr, ErrUpstreamUnavailable) {
		t.Errorf("errors.Is(upstreamErr, ErrUpstreamUnavailable) = false, want true")
	}
	if !errors.Is(upstreamErr, baseErr) {
		t.Errorf("errors.Is(upstreamErr, baseErr) = false, want true")
	}

	if ErrorCode(upstreamErr) != CodeUpstreamUnavailable {
		t.Errorf("ErrorCode(upstreamErr) = %d, want %d", ErrorCode(upstreamErr), CodeUpstreamUnavailable)
	}
}

func TestErrorCategoryHelpers(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{"NotFound matches", ErrTransactionNotFound, IsNotFoundError, true},
		{"NotFound wrapped matches", NewEventError("payment.failed", "pi_1", "", ErrTransactionNotFound), IsNotFoundError, true},
		{"NotFound mismatch", ErrInvalidAmount, IsNotFoundError, false},
		{"Validation amount", ErrInvalidAmount, IsValidationError, true},
		{"Validation currency", ErrInvalidCurrency, IsValidationError, true},
		{"Validation identifier", ErrInvalidIdentifier, IsValidationError, true},
		{"Validation event", ErrInvalidEvent, IsValidationError, true},
		{"Validation mismatch", ErrUnauthorized, IsValidationError, false},
		{"Unauthorized", ErrUnauthorized, IsUnauthorizedError, true},
		{"Upstream wrapped", NewUpstreamError("retrieve_status", "pi_1", errors.New("timeout")), IsUpstreamError, true},
		{"Persistence", fmt.Errorf("%w: write failed", ErrDatabaseConnection), IsPersistenceError, true},
		{"Signature", fmt.Errorf("%w: bad digest", ErrSignatureInvalid), IsSignatureError, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.checker(tc.err); got != tc.want {
				t.Errorf("checker(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
