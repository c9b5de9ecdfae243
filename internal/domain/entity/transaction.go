package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	tport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/google/uuid"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusCreated   TransactionStatus = "created"
	StatusSucceeded TransactionStatus = "succeeded"
	StatusFailed    TransactionStatus = "failed"
	StatusRefunded  TransactionStatus = "refunded"
)

// localIDPattern matches the canonical 36-character hyphenated UUID form.
// Any identifier that doesn't match it is treated as an external reference,
// which keeps the two lookup key spaces disjoint.
var localIDPattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Transaction represents a monetary transaction tracked against an
// external payment processor. It is created exactly once and never
// deleted; only its status and metadata change afterwards.
type Transaction struct {
	ID          uint64            // Surrogate database key
	LocalID     string            // Identifier minted locally at creation time
	ExternalRef string            // Identifier issued by the payment processor
	Amount      int64             // Amount in the smallest currency unit
	Currency    string            // Lowercase currency code
	Status      TransactionStatus // Current lifecycle status
	Metadata    map[string]any    // Merge-only accumulator of auxiliary facts
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction mints a fresh transaction in the created status.
// The external reference is attached by the caller once the provider
// has issued it, before the record is persisted.
func NewTransaction(amount int64, currency string, timeProvider tport.TimeProvider) (*Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = "usd"
	}
	if len(currency) != 3 {
		return nil, errs.ErrInvalidCurrency
	}

	now := timeProvider.Now()
	localID := uuid.NewString()
	return &Transaction{
		LocalID:   localID,
		Amount:    amount,
		Currency:  currency,
		Status:    StatusCreated,
		Metadata:  map[string]any{"txn_id": localID},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsTerminal reports whether the status is terminal with respect to
// forward progress. succeeded can still move to refunded.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusRefunded
}

// IsValidStatus reports whether the value belongs to the closed status set.
func IsValidStatus(s string) bool {
	switch TransactionStatus(s) {
	case StatusCreated, StatusSucceeded, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// RecordKey identifies a stored transaction by exactly one of its two
// identifiers. The zero value is invalid.
type RecordKey struct {
	LocalID     string
	ExternalRef string
}

// IsZero reports whether no identifier is set.
func (k RecordKey) IsZero() bool {
	return k.LocalID == "" && k.ExternalRef == ""
}

// KeyForIdentifier resolves an opaque identifier into a lookup key.
// Identifiers in canonical UUID form address the local id column;
// everything else addresses the external reference column.
func KeyForIdentifier(id string) (RecordKey, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RecordKey{}, errs.ErrInvalidIdentifier
	}
	if IsLocalID(id) {
		return RecordKey{LocalID: id}, nil
	}
	return RecordKey{ExternalRef: id}, nil
}

// IsLocalID reports whether the identifier matches the locally minted
// UUID format.
func IsLocalID(id string) bool {
	return localIDPattern.MatchString(strings.ToLower(id))
}
