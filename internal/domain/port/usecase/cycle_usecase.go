package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// CycleUseCase manages the vault-wide lock duration
type CycleUseCase interface {
	// SetCycleDuration replaces the duration applied to future records
	SetCycleDuration(ctx context.Context, caller string, duration time.Duration) (*entity.CycleConfig, error)

	// CurrentCycle returns the configuration in effect
	CurrentCycle(ctx context.Context) (*entity.CycleConfig, error)
}
