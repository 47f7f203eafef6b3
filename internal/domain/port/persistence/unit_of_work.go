package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetRecordRepository returns a record repository bound to the current transaction
	GetRecordRepository(ctx context.Context) RecordRepository

	// GetAssetRepository returns an allowlist repository bound to the current transaction
	GetAssetRepository(ctx context.Context) AssetRepository

	// GetConfigRepository returns a cycle config repository bound to the current transaction
	GetConfigRepository(ctx context.Context) ConfigRepository

	// GetNotificationRepository returns a notification repository bound to the current transaction
	GetNotificationRepository(ctx context.Context) NotificationRepository
}
