package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the long-lived database connection: it is acquired once
// at process start and reused across all units of work.
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect establishes a database connection, retrying transient startup
// failures before giving up.
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host":     m.config.Host,
		"port":     m.config.Port,
		"database": m.config.Database,
	})

	var lastErr error
	attempts := m.config.RetryAttempts + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := m.open()
		if err == nil {
			m.db = db
			m.logger.Info("Database connection established", map[string]any{
				"attempt": attempt,
			})
			return db, nil
		}

		lastErr = err
		m.logger.Warn("Database connection attempt failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
		if attempt < attempts {
			time.Sleep(m.config.RetryDelay)
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, lastErr)
}

// open dials the database and configures the connection pool.
func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewGormLogger(m.logger, m.config.LogLevel),
	}

	db, err := gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	ctx, cancel := m.timeProvider.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// DB returns the active connection
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	m.logger.Info("Closing database connection", nil)
	return sqlDB.Close()
}
