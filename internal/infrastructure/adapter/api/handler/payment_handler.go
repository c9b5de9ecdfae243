package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	paymentUseCase "github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/payment"
	queryUseCase "github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/query"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment creation and queries
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	queryService   *queryUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	paymentService *paymentUseCase.Service,
	queryService *queryUseCase.Service,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		queryService:   queryService,
		logger:         logger,
	}
}

// CreatePaymentIntent handles POST /api/payment/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidAmount,
			Message: "Amount is required (in cents)",
		})
		return
	}

	result, err := h.paymentService.CreateIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CreatePaymentResponse{
		ClientSecret: result.ClientSecret,
		TxnID:        result.Transaction.LocalID,
		ExternalRef:  result.Transaction.ExternalRef,
	})
}

// GetStatus handles GET /api/payment/status/:id. The identifier may be
// either the local id or the external reference.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	txn, err := h.queryService.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListAll handles GET /api/payment/all (admin only)
func (h *PaymentHandler) ListAll(c *gin.Context) {
	transactions, err := h.queryService.ListRecent(c.Request.Context(), queryUseCase.MaxRecentLimit)
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.NewTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// statusForError maps domain errors onto HTTP responses
func statusForError(err error) (int, string) {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, "Transaction not found"
	case domainerr.IsUnauthorizedError(err):
		return http.StatusForbidden, "Forbidden"
	case domainerr.IsUpstreamError(err):
		return http.StatusBadGateway, "Payment processor request failed"
	case domainerr.IsPersistenceError(err):
		return http.StatusInternalServerError, "Storage unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
