package query

import (
	"context"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/persistence"
)

// MaxRecentLimit bounds the recent listing so a caller can never trigger
// an unbounded scan.
const MaxRecentLimit = 50

// Service resolves transactions by either identifier and lists recent
// records. It is read-only.
type Service struct {
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewService creates a query service
func NewService(transactionRepo persistence.TransactionRepository, logger coreport.Logger) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Resolve looks a transaction up by an opaque identifier. Identifiers in
// canonical UUID form resolve against the local id, everything else
// against the external reference.
func (s *Service) Resolve(ctx context.Context, identifier string) (*entity.Transaction, error) {
	key, err := entity.KeyForIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.GetByKey(ctx, key)
}

// ListRecent returns up to limit transactions, newest first. Limits
// outside (0, MaxRecentLimit] are clamped to the maximum.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 || limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.transactionRepo.ListRecent(ctx, limit)
}
