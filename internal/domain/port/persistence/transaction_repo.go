package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
)

// TransactionRepository defines the store the reconciliation core runs on.
// Every mutation is a single atomic write; concurrent writes against the
// same record must serialize at the row, never interleave field-by-field.
type TransactionRepository interface {
	// Create persists a new transaction record
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the write fails (includes duplicate identifiers)
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByKey retrieves a transaction by exactly one of its identifiers
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no record matches the key
	// - ErrInvalidIdentifier: if the key is empty
	// - ErrDatabaseConnection: if the read fails
	GetByKey(ctx context.Context, key entity.RecordKey) (*entity.Transaction, error)

	// ListRecent returns up to limit transactions, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the read fails
	ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error)

	// Transition atomically sets the status, bumps updated_at and merges the
	// metadata delta into the stored document in a single statement, then
	// returns the updated record. Merging the same delta twice is a no-op,
	// which is what makes event redelivery safe.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no record matches the key
	// - ErrInvalidIdentifier: if the key is empty
	// - ErrDatabaseConnection: if the write fails
	Transition(ctx context.Context, key entity.RecordKey, status entity.TransactionStatus, delta map[string]any) (*entity.Transaction, error)
}
