package persistence

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// NotificationRepository remembers the inbound transfers already turned into records
type NotificationRepository interface {
	// Exists checks if a transfer id was already processed
	Exists(ctx context.Context, transferID string) (bool, error)

	// Get returns the processed notification for a transfer id
	//
	// Possible errors:
	// - ErrNotFound: If the transfer id was never processed
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, transferID string) (*entity.ProcessedNotification, error)

	// MarkProcessed stores the notification
	//
	// Possible errors:
	// - ErrDuplicateEntry: If the transfer id is already stored
	// - ErrDatabaseConnection: If database connection fails
	MarkProcessed(ctx context.Context, notification *entity.ProcessedNotification) error
}
