package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	adminUseCase "github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles refund, verification and receipt requests
type AdminHandler struct {
	adminService *adminUseCase.Service
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminService *adminUseCase.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Refund handles POST /api/payment/refund
func (h *AdminHandler) Refund(c *gin.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "external_ref required",
		})
		return
	}

	txn, err := h.adminService.Refund(c.Request.Context(), req.ExternalRef)
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.RefundResponse{
		Success:     true,
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// VerifyStatus handles POST /api/payment/verify-status
func (h *AdminHandler) VerifyStatus(c *gin.Context) {
	var req dto.VerifyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "external_ref required",
		})
		return
	}

	result, err := h.adminService.VerifyAndSync(c.Request.Context(), req.ExternalRef)
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyStatusResponse{
		Success:        true,
		Status:         string(result.LocalStatus),
		ProviderStatus: result.AuthoritativeState,
	})
}

// Receipt handles GET /api/payment/receipt/:id
func (h *AdminHandler) Receipt(c *gin.Context) {
	receipt, err := h.adminService.BuildReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}
	c.JSON(http.StatusOK, dto.NewReceiptResponse(receipt))
}
