package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/persistence"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/reconcile"
)

// Provider status strings the sync mapping recognizes.
const (
	providerStatusSucceeded      = "succeeded"
	providerStatusCanceled       = "canceled"
	providerStatusRequiresMethod = "requires_payment_method"
)

// Service carries the administrative operations: reversal requests and
// the pull-based reconciliation against the processor's authoritative
// status. Both write through the reconciliation engine's transition
// primitive so push and pull share one atomic update path.
type Service struct {
	transactionRepo persistence.TransactionRepository
	provider        provport.PaymentProvider
	engine          *reconcile.Engine
	logger          coreport.Logger
}

// NewService creates an administrative action service
func NewService(
	transactionRepo persistence.TransactionRepository,
	provider provport.PaymentProvider,
	engine *reconcile.Engine,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		provider:        provider,
		engine:          engine,
		logger:          logger,
	}
}

// Refund requests a reversal from the processor, then optimistically
// marks the local record refunded and merges the refund id. The
// processor's own refund webhook arrives later and is idempotent against
// this already-applied state. Nothing local changes if the upstream call
// fails.
func (s *Service) Refund(ctx context.Context, externalRef string) (*entity.Transaction, error) {
	if externalRef == "" {
		return nil, errs.ErrInvalidIdentifier
	}

	refund, err := s.provider.CreateRefund(ctx, externalRef)
	if err != nil {
		s.logger.Error("Refund request rejected by processor", map[string]any{
			"external_ref": externalRef,
			"error":        err.Error(),
		})
		return nil, err
	}

	txn, err := s.engine.ApplyStatus(ctx,
		entity.RecordKey{ExternalRef: externalRef},
		entity.StatusRefunded,
		map[string]any{"refund_id": refund.ID},
	)
	if err != nil {
		return nil, fmt.Errorf("refund accepted upstream but local update failed: %w", err)
	}

	s.logger.Info("Transaction refunded", map[string]any{
		"external_ref": externalRef,
		"refund_id":    refund.ID,
	})
	return txn, nil
}

// SyncResult reports both sides of a verify-and-sync call.
type SyncResult struct {
	Transaction        *entity.Transaction
	LocalStatus        entity.TransactionStatus
	AuthoritativeState string
}

// VerifyAndSync pulls the processor's authoritative status and forcibly
// overwrites the local one to match, merging the raw status string into
// metadata. Safe to call repeatedly: once the two sides agree the call
// is a fixed point. This is the system's defense against webhook
// reordering.
func (s *Service) VerifyAndSync(ctx context.Context, externalRef string) (*SyncResult, error) {
	if externalRef == "" {
		return nil, errs.ErrInvalidIdentifier
	}

	authoritative, err := s.provider.RetrieveStatus(ctx, externalRef)
	if err != nil {
		s.logger.Error("Status pull failed", map[string]any{
			"external_ref": externalRef,
			"error":        err.Error(),
		})
		return nil, err
	}

	status := mapAuthoritativeStatus(authoritative)
	txn, err := s.engine.ApplyStatus(ctx,
		entity.RecordKey{ExternalRef: externalRef},
		status,
		map[string]any{"provider_status": authoritative},
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction synced against authoritative status", map[string]any{
		"external_ref":    externalRef,
		"local_status":    string(status),
		"provider_status": authoritative,
	})

	return &SyncResult{
		Transaction:        txn,
		LocalStatus:        txn.Status,
		AuthoritativeState: authoritative,
	}, nil
}

// mapAuthoritativeStatus is the fixed mapping from provider status
// strings onto the local closed set.
func mapAuthoritativeStatus(authoritative string) entity.TransactionStatus {
	switch authoritative {
	case providerStatusSucceeded:
		return entity.StatusSucceeded
	case providerStatusCanceled, providerStatusRequiresMethod:
		return entity.StatusFailed
	default:
		return entity.StatusCreated
	}
}

// Receipt is the renderable view of a transaction for audit output.
// Document rendering itself stays outside the core.
type Receipt struct {
	LocalID     string
	ExternalRef string
	Amount      string
	Status      entity.TransactionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Metadata    map[string]any
}

// BuildReceipt resolves the transaction by either identifier and shapes
// its receipt data, with the amount formatted in major units.
func (s *Service) BuildReceipt(ctx context.Context, identifier string) (*Receipt, error) {
	key, err := entity.KeyForIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	txn, err := s.transactionRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		LocalID:     txn.LocalID,
		ExternalRef: txn.ExternalRef,
		Amount:      formatAmount(txn.Amount, txn.Currency),
		Status:      txn.Status,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
		Metadata:    txn.Metadata,
	}, nil
}

// formatAmount renders minor units as a major-unit string, e.g. 1000
// usd -> "10.00 USD". Two-decimal minor units are assumed; currencies
// without that property are out of scope.
func formatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, strings.ToUpper(currency))
}
