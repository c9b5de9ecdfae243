package handler

import (
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// signatureHeader carries the envelope signature on webhook deliveries.
const signatureHeader = "Webhook-Signature"

// maxEventPayloadBytes bounds the raw body read.
const maxEventPayloadBytes = 64 * 1024

// WebhookHandler ingests processor lifecycle events. The raw body is
// verified before anything reaches the reconciliation engine.
type WebhookHandler struct {
	verifier provport.EventVerifier
	engine   *reconcile.Engine
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	verifier provport.EventVerifier,
	engine *reconcile.Engine,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		verifier: verifier,
		engine:   engine,
		logger:   logger,
	}
}

// HandleEvent handles POST /webhook.
//
// Response codes drive the processor's redelivery: 2xx acknowledges the
// event (including unknown kinds and unmatched records - redelivering
// those would never help), while a 5xx signals "not durably applied" so
// the processor retries. Retries are safe because application is
// idempotent.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEventPayloadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidEvent,
			Message: "Unreadable payload",
		})
		return
	}

	event, err := h.verifier.VerifyAndDecode(payload, c.GetHeader(signatureHeader))
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", map[string]any{
			"client_ip": c.ClientIP(),
			"error":     err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Webhook signature verification failed",
		})
		return
	}

	status, err := h.engine.Apply(c.Request.Context(), *event)
	switch {
	case err == nil:
		h.logger.Debug("Webhook event acknowledged", map[string]any{
			"event_kind": string(event.Kind),
			"status":     string(status),
		})
		c.JSON(http.StatusOK, dto.WebhookAck{Received: true})
	case domainerr.IsNotFoundError(err):
		// A record created moments ago may not be visible yet; let the
		// processor deliver again later.
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "No transaction matches the event",
		})
	case domainerr.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Event carries no usable correlation identifier",
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Event not applied; safe to redeliver",
		})
	}
}
