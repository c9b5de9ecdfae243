package provider

import (
	"context"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
)

// Intent is the provider's view of a pending charge.
type Intent struct {
	ExternalRef  string // Identifier the provider issued for the charge
	ClientSecret string // Opaque token the client completes the charge with
	Status       string // Provider-side status string, verbatim
}

// Refund is the provider's acknowledgement of a reversal request.
type Refund struct {
	ID     string
	Status string
}

// PaymentProvider is the boundary to the external payment processor.
// The core consumes it; it never implements the provider's wire protocol.
type PaymentProvider interface {
	// CreateIntent opens a pending charge with the processor. The local id
	// is handed over as provider-side metadata so that later webhook events
	// can echo it back as a correlation key.
	//
	// Possible errors:
	// - ErrUpstreamUnavailable: if the call fails or times out
	CreateIntent(ctx context.Context, amount int64, currency string, localID string) (*Intent, error)

	// CreateRefund requests a reversal of the charge.
	//
	// Possible errors:
	// - ErrUpstreamUnavailable: if the call fails or times out
	CreateRefund(ctx context.Context, externalRef string) (*Refund, error)

	// RetrieveStatus pulls the authoritative current status of the charge.
	//
	// Possible errors:
	// - ErrUpstreamUnavailable: if the call fails or times out
	RetrieveStatus(ctx context.Context, externalRef string) (string, error)
}

// EventVerifier authenticates and decodes an inbound event envelope.
// It sits upstream of the reconciliation engine: no event reaches the
// engine without having passed through a verifier.
type EventVerifier interface {
	// VerifyAndDecode checks the payload signature and unmarshals the
	// envelope into a lifecycle event.
	//
	// Possible errors:
	// - ErrSignatureInvalid: if the signature does not match the payload
	VerifyAndDecode(payload []byte, signature string) (*entity.LifecycleEvent, error)
}
