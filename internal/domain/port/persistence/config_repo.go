package persistence

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// ConfigRepository stores the singleton cycle configuration
type ConfigRepository interface {
	// Get returns the current configuration
	//
	// Possible errors:
	// - ErrCycleNotConfigured: If the cycle time was never set
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context) (*entity.CycleConfig, error)

	// GetForUpdate is Get with the singleton row locked until the transaction ends
	GetForUpdate(ctx context.Context) (*entity.CycleConfig, error)

	// Save inserts or replaces the singleton row
	Save(ctx context.Context, config *entity.CycleConfig) error
}
