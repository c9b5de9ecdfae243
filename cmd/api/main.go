package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/query"
	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/usecase/reconcile"

	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/provider"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	environment := flag.String("env", envOrDefault("APP_ENV", "development"), "configuration environment name")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*environment)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.Environment == "production")
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repository and outbound adapters
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger)
	statusNotifier := notifier.NewLogNotifier(appLogger)
	providerClient := provider.NewHTTPClient(
		cfg.Provider.BaseURL,
		cfg.Provider.APIKey,
		cfg.Provider.RequestTimeout,
		appLogger,
	)
	eventVerifier := provider.NewHMACVerifier(cfg.Provider.WebhookSecret)

	// Initialize use cases
	reconcileEngine := reconcile.NewEngine(transactionRepo, statusNotifier, appLogger)
	paymentService := payment.NewService(transactionRepo, providerClient, tp, appLogger)
	queryService := query.NewService(transactionRepo, appLogger)
	adminService := admin.NewService(transactionRepo, providerClient, reconcileEngine, appLogger)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, queryService, appLogger)
	webhookHandler := handler.NewWebhookHandler(eventVerifier, reconcileEngine, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, paymentHandler, webhookHandler, adminHandler, cfg.Admin.KeyHash, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting new connections before draining the event queues so
	// no transition is enqueued after the serializer closes.
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	reconcileEngine.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
