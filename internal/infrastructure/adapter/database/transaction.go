package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
	}
}

// Begin starts a SERIALIZABLE transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction with SERIALIZABLE isolation", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, u.errorMapper.MapError(err, "set isolation level")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}

	return nil
}

// Rollback rolls back the current transaction; an already finished one is not an error
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetRecordRepository returns a record repository in the current transaction
func (u *UnitOfWork) GetRecordRepository(ctx context.Context) persistence.RecordRepository {
	return repository.NewRecordRepository(u.getDbFromContext(ctx), u.logger)
}

// GetAssetRepository returns an allowlist repository in the current transaction
func (u *UnitOfWork) GetAssetRepository(ctx context.Context) persistence.AssetRepository {
	return repository.NewAssetRepository(u.getDbFromContext(ctx), u.logger)
}

// GetConfigRepository returns a cycle config repository in the current transaction
func (u *UnitOfWork) GetConfigRepository(ctx context.Context) persistence.ConfigRepository {
	return repository.NewConfigRepository(u.getDbFromContext(ctx), u.logger)
}

// GetNotificationRepository returns a notification repository in the current transaction
func (u *UnitOfWork) GetNotificationRepository(ctx context.Context) persistence.NotificationRepository {
	return repository.NewNotificationRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext returns the transaction in ctx, or the pool outside of one
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
