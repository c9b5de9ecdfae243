package reconcile

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	notifport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/notifier"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/persistence"
)

// Engine applies processor lifecycle events to the transaction store.
// Every event is treated as authoritative for its own kind and applied
// last-write-wins; applying the same event twice leaves the record
// unchanged. Out-of-order delivery is not rejected here - the pull-based
// verify operation is the correction mechanism for reordering.
type Engine struct {
	transactionRepo persistence.TransactionRepository
	notifier        notifport.Notifier
	serializer      *Serializer
	logger          coreport.Logger
}

// NewEngine creates a reconciliation engine. The notifier may be nil,
// in which case transitions apply without a side-channel announcement.
func NewEngine(
	transactionRepo persistence.TransactionRepository,
	notifier notifport.Notifier,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		transactionRepo: transactionRepo,
		notifier:        notifier,
		serializer:      NewSerializer(logger),
		logger:          logger,
	}
}

// Apply routes a single lifecycle event through the state machine and
// returns the resulting status. Unrecognized kinds are acknowledged
// without an error so the processor stops redelivering them; the empty
// status marks that nothing was applied.
func (e *Engine) Apply(ctx context.Context, event entity.LifecycleEvent) (entity.TransactionStatus, error) {
	status, delta, ok := event.TargetStatus()
	if !ok {
		e.logger.Debug("Ignoring unhandled event kind", map[string]any{
			"event_kind":   string(event.Kind),
			"external_ref": event.ExternalRef,
		})
		return "", nil
	}

	key, err := event.CorrelationKey()
	if err != nil {
		return "", errs.NewEventError(string(event.Kind), event.ExternalRef, event.LocalRef, err)
	}

	// Deliveries addressed by the same identifier funnel through one
	// queue. A record reached via its local id and via its external ref
	// still lands on two queues; the store's single-statement row update
	// is what keeps that cross-identifier race safe.
	txn, err := e.serializer.Execute(ctx, serializeKey(key), func(ctx context.Context) (*entity.Transaction, error) {
		return e.transactionRepo.Transition(ctx, key, status, delta)
	})
	if err != nil {
		return "", errs.NewEventError(string(event.Kind), event.ExternalRef, event.LocalRef, err)
	}

	e.logger.Info("Lifecycle event applied", map[string]any{
		"event_kind":   string(event.Kind),
		"local_id":     txn.LocalID,
		"external_ref": txn.ExternalRef,
		"status":       string(txn.Status),
	})

	e.announce(ctx, txn)
	return txn.Status, nil
}

// ApplyStatus forcibly overwrites the record's status, merging the delta.
// This is the transition primitive the administrative pull path shares
// with the push path; it bypasses the event kind mapping.
func (e *Engine) ApplyStatus(
	ctx context.Context,
	key entity.RecordKey,
	status entity.TransactionStatus,
	delta map[string]any,
) (*entity.Transaction, error) {
	txn, err := e.serializer.Execute(ctx, serializeKey(key), func(ctx context.Context) (*entity.Transaction, error) {
		return e.transactionRepo.Transition(ctx, key, status, delta)
	})
	if err != nil {
		return nil, err
	}
	e.announce(ctx, txn)
	return txn, nil
}

// announce fires the best-effort side channel. Failures are logged and
// swallowed; the transition is already durable and must stay so.
func (e *Engine) announce(ctx context.Context, txn *entity.Transaction) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.StatusChanged(ctx, txn); err != nil {
		e.logger.Warn("Status notification dispatch failed", map[string]any{
			"local_id":     txn.LocalID,
			"external_ref": txn.ExternalRef,
			"status":       string(txn.Status),
			"error":        err.Error(),
		})
	}
}

// Shutdown drains the per-record queues.
func (e *Engine) Shutdown() {
	e.serializer.Shutdown()
}

// serializeKey flattens a record key into the queue identity. Queues
// are keyed by identifier, not by row; prefixing keeps the zero parts
// of the two identifier spaces from colliding.
func serializeKey(key entity.RecordKey) string {
	if key.LocalID != "" {
		return fmt.Sprintf("local:%s", key.LocalID)
	}
	return fmt.Sprintf("external:%s", key.ExternalRef)
}
