package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.ConfigRepository = (*ConfigRepository)(nil)

// ConfigRepository keeps the cycle configuration in a single row
type ConfigRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewConfigRepository creates a new ConfigRepository instance
func NewConfigRepository(db *gorm.DB, logger coreport.Logger) *ConfigRepository {
	return &ConfigRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the current configuration
func (r *ConfigRepository) Get(ctx context.Context) (*entity.CycleConfig, error) {
	return r.get(r.db.WithContext(ctx))
}

// GetForUpdate returns the configuration with its row locked
func (r *ConfigRepository) GetForUpdate(ctx context.Context) (*entity.CycleConfig, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

func (r *ConfigRepository) get(db *gorm.DB) (*entity.CycleConfig, error) {
	var row model.CycleConfig
	err := db.Where("id = ?", model.CycleConfigID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrCycleNotConfigured
	}
	if err != nil {
		r.logger.Error("Failed to read cycle config", map[string]any{
			"error": err.Error(),
		})
		return nil, wrapDatabaseError(err)
	}

	return &entity.CycleConfig{
		CycleDuration: time.Duration(row.CycleSeconds) * time.Second,
		Version:       row.Version,
		UpdatedBy:     row.UpdatedBy,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

// Save inserts or replaces the singleton row
func (r *ConfigRepository) Save(ctx context.Context, config *entity.CycleConfig) error {
	row := model.CycleConfig{
		ID:           model.CycleConfigID,
		CycleSeconds: int64(config.CycleDuration / time.Second),
		Version:      config.Version,
		UpdatedBy:    config.UpdatedBy,
		UpdatedAt:    config.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cycle_seconds", "version", "updated_by", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Failed to save cycle config", map[string]any{
			"version": config.Version,
			"error":   err.Error(),
		})
		return wrapDatabaseError(err)
	}
	return nil
}
