package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so that
// timestamps stay deterministic under test.
type TimeProvider interface {
	Now() time.Time
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
