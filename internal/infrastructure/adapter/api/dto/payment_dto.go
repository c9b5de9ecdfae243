package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/admin"
)

// CreatePaymentRequest is the API request for opening a charge intent
type CreatePaymentRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
}

// CreatePaymentResponse returns both identifiers and the client secret
type CreatePaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
	TxnID        string `json:"txn_id"`
	ExternalRef  string `json:"external_ref"`
}

// TransactionResponse is the full record view returned by queries
type TransactionResponse struct {
	TxnID       string         `json:"txn_id"`
	ExternalRef string         `json:"external_ref"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewTransactionResponse maps the entity onto the API shape
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		TxnID:       txn.LocalID,
		ExternalRef: txn.ExternalRef,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Status:      string(txn.Status),
		Metadata:    txn.Metadata,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// RefundRequest asks for a reversal of a charge
type RefundRequest struct {
	ExternalRef string `json:"external_ref" binding:"required"`
}

// RefundResponse confirms the reversal and returns the updated record
type RefundResponse struct {
	Success     bool                `json:"success"`
	Transaction TransactionResponse `json:"transaction"`
}

// VerifyStatusRequest asks for a pull-based status sync
type VerifyStatusRequest struct {
	ExternalRef string `json:"external_ref" binding:"required"`
}

// VerifyStatusResponse reports both sides of the sync
type VerifyStatusResponse struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	ProviderStatus string `json:"provider_status"`
}

// WebhookAck is the acknowledgement body for event ingestion
type WebhookAck struct {
	Received bool `json:"received"`
}

// ReceiptResponse is the renderable receipt document
type ReceiptResponse struct {
	TxnID       string         `json:"txn_id"`
	ExternalRef string         `json:"external_ref"`
	Amount      string         `json:"amount"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewReceiptResponse maps receipt data onto the API shape
func NewReceiptResponse(r *admin.Receipt) ReceiptResponse {
	return ReceiptResponse{
		TxnID:       r.LocalID,
		ExternalRef: r.ExternalRef,
		Amount:      r.Amount,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Metadata:    r.Metadata,
	}
}
