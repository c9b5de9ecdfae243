package migration

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.0.0"

// Manager applies schema migrations and records the applied version.
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema to the current version.
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		return fmt.Errorf("failed to create schema version table: %w", err)
	}

	current, err := m.currentVersion()
	if err != nil {
		return err
	}
	if current == CurrentSchemaVersion {
		m.logger.Info("Database already at target version", map[string]any{
			"version": current,
		})
		return nil
	}

	if err := m.db.AutoMigrate(&model.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate transactions table: %w", err)
	}
	if err := m.createMetadataIndex(); err != nil {
		return err
	}
	if err := m.recordVersion(); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// createMetadataIndex adds a GIN index so metadata keys stay queryable
// for audits without table scans.
func (m *Manager) createMetadataIndex() error {
	err := m.db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_transactions_metadata ON transactions USING GIN (metadata)`,
	).Error
	if err != nil {
		return fmt.Errorf("failed to create metadata index: %w", err)
	}
	return nil
}

// currentVersion reads the most recently applied schema version.
func (m *Manager) currentVersion() (string, error) {
	var version model.SchemaVersion
	result := m.db.Order("applied_at DESC").Limit(1).Find(&version)
	if result.Error != nil {
		return "", fmt.Errorf("failed to read schema version: %w", result.Error)
	}
	return version.Version, nil
}

// recordVersion stores the applied version row.
func (m *Manager) recordVersion() error {
	version := model.SchemaVersion{
		Version:   CurrentSchemaVersion,
		AppliedAt: m.timeProvider.Now(),
	}
	if err := m.db.Create(&version).Error; err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
