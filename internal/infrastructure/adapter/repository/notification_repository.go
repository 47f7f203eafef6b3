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
)

var _ persistence.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository implements persistence.NotificationRepository using GORM
type NotificationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Exists checks if a transfer id was already processed
func (r *NotificationRepository) Exists(ctx context.Context, transferID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProcessedNotification{}).
		Where("transfer_id = ?", transferID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to check notification existence", map[string]any{
			"transfer_id": transferID,
			"error":       err.Error(),
		})
		return false, wrapDatabaseError(err)
	}
	return count > 0, nil
}

// Get returns the processed notification for a transfer id
func (r *NotificationRepository) Get(ctx context.Context, transferID string) (*entity.ProcessedNotification, error) {
	var row model.ProcessedNotification
	err := r.db.WithContext(ctx).Where("transfer_id = ?", transferID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get processed notification", map[string]any{
			"transfer_id": transferID,
			"error":       err.Error(),
		})
		return nil, wrapDatabaseError(err)
	}

	return &entity.ProcessedNotification{
		TransferID:  row.TransferID,
		Owner:       row.Owner,
		StartTime:   time.Unix(row.StartTime, 0).UTC(),
		ProcessedAt: row.ProcessedAt,
	}, nil
}

// MarkProcessed stores the notification
func (r *NotificationRepository) MarkProcessed(ctx context.Context, notification *entity.ProcessedNotification) error {
	row := model.ProcessedNotification{
		TransferID:  notification.TransferID,
		Owner:       notification.Owner,
		StartTime:   notification.StartTime.Unix(),
		ProcessedAt: notification.ProcessedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Notification already processed", map[string]any{
				"transfer_id": notification.TransferID,
			})
			return errs.ErrDuplicateEntry
		}
		r.logger.Error("Failed to mark notification processed", map[string]any{
			"transfer_id": notification.TransferID,
			"error":       err.Error(),
		})
		return wrapDatabaseError(err)
	}
	return nil
}
