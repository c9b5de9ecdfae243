package notifier

import (
	"context"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
)

// Notifier is the best-effort side channel (email, chat, ...) invoked
// after a status transition. Callers must log and swallow its errors;
// a failed dispatch never rolls back or retries the transition.
type Notifier interface {
	// StatusChanged announces that the transaction reached a new status.
	StatusChanged(ctx context.Context, transaction *entity.Transaction) error
}
