package notifier

import (
	"context"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	notifport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/notifier"
)

// LogNotifier announces status changes on the application log. It is
// the deployable stand-in for a real side channel such as email; the
// contract stays the same either way.
type LogNotifier struct {
	logger coreport.Logger
}

// NewLogNotifier creates a notifier backed by the application log
func NewLogNotifier(logger coreport.Logger) notifport.Notifier {
	return &LogNotifier{logger: logger}
}

// StatusChanged logs the transition announcement
func (n *LogNotifier) StatusChanged(_ context.Context, txn *entity.Transaction) error {
	n.logger.Info("Transaction status notification", map[string]any{
		"local_id":     txn.LocalID,
		"external_ref": txn.ExternalRef,
		"status":       string(txn.Status),
		"amount":       txn.Amount,
		"currency":     txn.Currency,
	})
	return nil
}
