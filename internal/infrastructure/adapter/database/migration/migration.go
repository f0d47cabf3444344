package migration

import (
	"context"

	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.0.0"

// Manager runs schema migrations
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to the current version
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.currentVersion(context.Background())
	if err != nil {
		return err
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.db.AutoMigrate(&model.Card{}, &model.Credential{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.recordVersion(); err != nil {
		return err
	}

	m.logger.Info("Database migrations complete", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// currentVersion reads the most recently applied schema version
func (m *Manager) currentVersion(ctx context.Context) (string, error) {
	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("id DESC").Limit(1).Find(&version)
	if result.Error != nil {
		m.logger.Error("Failed to read schema version", map[string]any{
			"error": result.Error.Error(),
		})
		return "", result.Error
	}
	return version.Version, nil
}

// recordVersion stores the applied schema version
func (m *Manager) recordVersion() error {
	version := model.SchemaVersion{
		Version:   CurrentSchemaVersion,
		AppliedAt: m.timeProvider.Now(),
	}
	if err := m.db.Create(&version).Error; err != nil {
		m.logger.Error("Failed to record schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
