package payment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/persistence"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
)

// Service creates transactions: it validates the request, opens a charge
// intent with the processor and persists the local record. Both
// identifiers exist from birth onward, which is what makes the dual-key
// lookup necessary downstream.
type Service struct {
	transactionRepo persistence.TransactionRepository
	provider        provport.PaymentProvider
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a payment creation service
func NewService(
	transactionRepo persistence.TransactionRepository,
	provider provport.PaymentProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		provider:        provider,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateIntentResult is returned to the client after a successful creation.
type CreateIntentResult struct {
	Transaction  *entity.Transaction
	ClientSecret string
}

// CreateIntent validates the request, mints a local id, opens the charge
// intent with the processor and stores the record in the created status.
// Validation failures reject before any external or store call; upstream
// failures leave nothing persisted.
func (s *Service) CreateIntent(ctx context.Context, amount int64, currency string) (*CreateIntentResult, error) {
	txn, err := entity.NewTransaction(amount, currency, s.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid creation request: %w", err)
	}

	intent, err := s.provider.CreateIntent(ctx, txn.Amount, txn.Currency, txn.LocalID)
	if err != nil {
		s.logger.Error("Failed to create charge intent", map[string]any{
			"local_id": txn.LocalID,
			"amount":   txn.Amount,
			"currency": txn.Currency,
			"error":    err.Error(),
		})
		return nil, err
	}

	txn.ExternalRef = intent.ExternalRef
	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to persist transaction record", map[string]any{
			"local_id":     txn.LocalID,
			"external_ref": txn.ExternalRef,
			"error":        err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"local_id":     txn.LocalID,
		"external_ref": txn.ExternalRef,
		"amount":       txn.Amount,
		"currency":     txn.Currency,
	})

	return &CreateIntentResult{
		Transaction:  txn,
		ClientSecret: intent.ClientSecret,
	}, nil
}
