package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	provport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/provider"
	adminUseCase "github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/reconcile"
	persistencemocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/persistence"
	providermocks "github.com/amirhossein-jamali/payment-reconciler/mocks/port/provider"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminRouter(t *testing.T, mockRepo *persistencemocks.MockTransactionRepository, mockProvider *providermocks.MockPaymentProvider) (*gin.Engine, func()) {
	engine := reconcile.NewEngine(mockRepo, nil, quietLogger(t))
	adminService := adminUseCase.NewService(mockRepo, mockProvider, engine, quietLogger(t))
	adminHandler := NewAdminHandler(adminService, quietLogger(t))

	router := gin.New()
	router.POST("/api/payment/refund", adminHandler.Refund)
	router.POST("/api/payment/verify-status", adminHandler.VerifyStatus)
	router.GET("/api/payment/receipt/:id", adminHandler.Receipt)
	return router, engine.Shutdown
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRefundEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Successful refund", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		mockProvider.EXPECT().CreateRefund(mock.Anything, "pi_1").
			Return(&provport.Refund{ID: "re_1"}, nil).Once()
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{ExternalRef: "pi_1"},
			entity.StatusRefunded,
			map[string]any{"refund_id": "re_1"},
		).Return(&entity.Transaction{ExternalRef: "pi_1", Status: entity.StatusRefunded}, nil).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		recorder := postJSON(router, "/api/payment/refund", `{"external_ref": "pi_1"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":true`)
		assert.Contains(t, recorder.Body.String(), `"status":"refunded"`)
	})

	t.Run("Missing external_ref is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		recorder := postJSON(router, "/api/payment/refund", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Processor rejection maps to bad gateway", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		mockProvider.EXPECT().CreateRefund(mock.Anything, "pi_1").
			Return(nil, errs.NewUpstreamError("create_refund", "pi_1", errs.ErrUpstreamUnavailable)).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		recorder := postJSON(router, "/api/payment/refund", `{"external_ref": "pi_1"}`)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}

func TestVerifyStatusEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Sync overwrites the local status", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		mockProvider.EXPECT().RetrieveStatus(mock.Anything, "pi_1").
			Return("succeeded", nil).Once()
		mockRepo.EXPECT().Transition(mock.Anything,
			entity.RecordKey{ExternalRef: "pi_1"},
			entity.StatusSucceeded,
			map[string]any{"provider_status": "succeeded"},
		).Return(&entity.Transaction{ExternalRef: "pi_1", Status: entity.StatusSucceeded}, nil).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		recorder := postJSON(router, "/api/payment/verify-status", `{"external_ref": "pi_1"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success": true, "status": "succeeded", "provider_status": "succeeded"}`, recorder.Body.String())
	})

	t.Run("Unknown record returns not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		mockProvider.EXPECT().RetrieveStatus(mock.Anything, "pi_unknown").
			Return("succeeded", nil).Once()
		mockRepo.EXPECT().Transition(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		recorder := postJSON(router, "/api/payment/verify-status", `{"external_ref": "pi_unknown"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestReceiptEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Receipt renders the formatted amount", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		stored := &entity.Transaction{
			LocalID: testLocalID, ExternalRef: "pi_1",
			Amount: 2500, Currency: "usd", Status: entity.StatusSucceeded,
		}
		mockRepo.EXPECT().GetByKey(mock.Anything, entity.RecordKey{ExternalRef: "pi_1"}).
			Return(stored, nil).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		req := httptest.NewRequest(http.MethodGet, "/api/payment/receipt/pi_1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"amount":"25.00 USD"`)
	})

	t.Run("Unknown identifier returns not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockProvider := providermocks.NewMockPaymentProvider(t)

		mockRepo.EXPECT().GetByKey(mock.Anything, mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		router, shutdown := newAdminRouter(t, mockRepo, mockProvider)
		defer shutdown()

		req := httptest.NewRequest(http.MethodGet, "/api/payment/receipt/pi_unknown", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
