package routes

import (
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	webhookHandler *handler.WebhookHandler,
	adminHandler *handler.AdminHandler,
	adminKeyHash string,
	logger coreport.Logger,
) {
	// Webhook ingestion sits outside the api group; the raw body must
	// reach the verifier untouched.
	router.POST("/webhook", webhookHandler.HandleEvent)

	paymentRoutes := router.Group("/api/payment")
	{
		paymentRoutes.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
		paymentRoutes.GET("/status/:id", paymentHandler.GetStatus)

		adminRoutes := paymentRoutes.Group("")
		adminRoutes.Use(middleware.RequireAdmin(adminKeyHash, logger))
		{
			adminRoutes.GET("/all", paymentHandler.ListAll)
			adminRoutes.POST("/refund", adminHandler.Refund)
			adminRoutes.POST("/verify-status", adminHandler.VerifyStatus)
			adminRoutes.GET("/receipt/:id", adminHandler.Receipt)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(cors.Default())
}
