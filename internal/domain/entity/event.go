package entity

import (
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
)

// EventKind identifies the type of a processor lifecycle notification.
type EventKind string

// Event kinds the reconciliation engine understands. The set is closed;
// anything else is acknowledged and ignored.
const (
	EventPaymentSucceeded EventKind = "payment.succeeded"
	EventPaymentFailed    EventKind = "payment.failed"
	EventChargeFailed     EventKind = "charge.failed"
	EventChargeRefunded   EventKind = "charge.refunded"
	EventRefundCreated    EventKind = "refund.created"
	EventRefundUpdated    EventKind = "refund.updated"
)

// LifecycleEvent is a verified notification envelope from the external
// payment processor. Signature verification happens before an event is
// constructed; the engine trusts every event it receives.
type LifecycleEvent struct {
	Kind          EventKind
	ExternalRef   string
	LocalRef      string // Local id echoed back through provider metadata, when present
	Amount        int64
	Currency      string
	FailureDetail string
}

// IsRecognized reports whether the event kind belongs to the closed set
// the engine acts on.
func (e LifecycleEvent) IsRecognized() bool {
	switch e.Kind {
	case EventPaymentSucceeded, EventPaymentFailed, EventChargeFailed,
		EventChargeRefunded, EventRefundCreated, EventRefundUpdated:
		return true
	}
	return false
}

// IsRefund reports whether the event is one of the refund sub-kinds.
func (e LifecycleEvent) IsRefund() bool {
	return e.Kind == EventChargeRefunded || e.Kind == EventRefundCreated || e.Kind == EventRefundUpdated
}

// CorrelationKey picks the record key the event resolves against.
// The local reference wins when present, because not every event type
// echoes it back; charge-level failures resolve by external reference
// only, since the charge object never carries the local id.
func (e LifecycleEvent) CorrelationKey() (RecordKey, error) {
	if e.Kind == EventChargeFailed {
		if e.ExternalRef == "" {
			return RecordKey{}, errs.ErrInvalidEvent
		}
		return RecordKey{ExternalRef: e.ExternalRef}, nil
	}
	if e.LocalRef != "" {
		return RecordKey{LocalID: e.LocalRef}, nil
	}
	if e.ExternalRef != "" {
		return RecordKey{ExternalRef: e.ExternalRef}, nil
	}
	return RecordKey{}, errs.ErrInvalidEvent
}

// TargetStatus maps the event kind onto the status it asserts, together
// with the metadata delta the transition must merge. Unrecognized kinds
// return ok=false.
func (e LifecycleEvent) TargetStatus() (status TransactionStatus, delta map[string]any, ok bool) {
	switch e.Kind {
	case EventPaymentSucceeded:
		return StatusSucceeded, nil, true
	case EventPaymentFailed, EventChargeFailed:
		delta = map[string]any{}
		if e.FailureDetail != "" {
			delta["failure_reason"] = e.FailureDetail
		}
		return StatusFailed, delta, true
	case EventChargeRefunded, EventRefundCreated, EventRefundUpdated:
		return StatusRefunded, nil, true
	}
	return "", nil, false
}
