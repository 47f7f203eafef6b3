package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.OwnerLockRepository = (*OwnerLockRepository)(nil)

// OwnerLockRepository leases depositor partitions through the owner_locks table
type OwnerLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOwnerLockRepository creates a new OwnerLockRepository instance
func NewOwnerLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *OwnerLockRepository {
	return &OwnerLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock inserts the lease or takes over an expired one.
// The conditional upsert touches no row while an unexpired lease exists.
func (r *OwnerLockRepository) AcquireLock(ctx context.Context, owner string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO owner_locks (owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (owner) DO UPDATE
		SET locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE owner_locks.expires_at <= ?`,
		owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsLockError(err) {
			return errs.ErrOwnerBusy
		}
		if isContextError(err) {
			r.logger.Warn("Context ended acquiring owner lease", map[string]any{
				"owner": owner,
				"error": err.Error(),
			})
			return fmt.Errorf("owner lease acquisition: %w", err)
		}

		r.logger.Error("Database error acquiring owner lease", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		return wrapDatabaseError(err)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Owner lease held elsewhere", map[string]any{
			"owner": owner,
		})
		return errs.ErrOwnerBusy
	}

	r.logger.Debug("Owner lease acquired", map[string]any{
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock drops the lease; a missing lease is not an error
func (r *OwnerLockRepository) ReleaseLock(ctx context.Context, owner string) error {
	result := r.db.WithContext(ctx).Where("owner = ?", owner).Delete(&model.OwnerLock{})

	// the lease expires on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context ended releasing owner lease", map[string]any{
			"owner": owner,
			"error": result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release owner lease", map[string]any{
			"owner": owner,
			"error": result.Error.Error(),
		})
		return wrapDatabaseError(result.Error)
	}

	return nil
}

// CleanupExpiredLocks removes leases whose holder never released them
func (r *OwnerLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.OwnerLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired owner leases", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, wrapDatabaseError(result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired owner leases removed", map[string]any{
			"leases_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
