package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
)

// eventEnvelope is the wire shape of an inbound notification.
type eventEnvelope struct {
	Kind          string `json:"kind"`
	ExternalRef   string `json:"external_ref"`
	LocalRef      string `json:"local_ref,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	FailureDetail string `json:"failure_detail,omitempty"`
}

// HMACVerifier authenticates event envelopes with an HMAC-SHA256
// signature over the raw payload. The reconciliation core never sees an
// event that has not passed through here.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier for the shared webhook secret
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

var _ provport.EventVerifier = (*HMACVerifier)(nil)

// VerifyAndDecode checks the hex-encoded signature against the payload
// and unmarshals the envelope.
func (v *HMACVerifier) VerifyAndDecode(payload []byte, signature string) (*entity.LifecycleEvent, error) {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed signature encoding", errs.ErrSignatureInvalid)
	}
	if !hmac.Equal(expected, provided) {
		return nil, errs.ErrSignatureInvalid
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: undecodable envelope", errs.ErrSignatureInvalid)
	}

	return &entity.LifecycleEvent{
		Kind:          entity.EventKind(envelope.Kind),
		ExternalRef:   envelope.ExternalRef,
		LocalRef:      envelope.LocalRef,
		Amount:        envelope.Amount,
		Currency:      envelope.Currency,
		FailureDetail: envelope.FailureDetail,
	}, nil
}

// Sign computes the signature the verifier expects for a payload. It
// exists for tooling and tests that have to forge valid envelopes.
func (v *HMACVerifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
