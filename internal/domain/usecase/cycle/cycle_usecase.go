package cycle

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

var _ usecase.CycleUseCase = (*CycleUseCase)(nil)

// CycleUseCase manages the lock duration applied to new records
type CycleUseCase struct {
	uow          persistence.UnitOfWork
	retrier      persistence.Retrier
	identity     coreport.IdentityProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCycleUseCase creates a new CycleUseCase
func NewCycleUseCase(
	uow persistence.UnitOfWork,
	retrier persistence.Retrier,
	identity coreport.IdentityProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CycleUseCase {
	return &CycleUseCase{
		uow:          uow,
		retrier:      retrier,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SetCycleDuration replaces the cycle time. The first call initializes it;
// later calls must change the value.
func (uc *CycleUseCase) SetCycleDuration(
	ctx context.Context,
	caller string,
	duration time.Duration,
) (*entity.CycleConfig, error) {
	admin := uc.identity.AdminAccount()
	if err := entity.RequireAuth(caller, admin); err != nil {
		return nil, err
	}
	if err := entity.ValidateCycleDuration(duration); err != nil {
		return nil, err
	}

	var result *entity.CycleConfig
	err := unitofwork.Execute(ctx, uc.uow, uc.retrier, uc.logger, func(txCtx context.Context) error {
		repo := uc.uow.GetConfigRepository(txCtx)

		current, err := repo.GetForUpdate(txCtx)
		switch {
		case errors.Is(err, errs.ErrCycleNotConfigured):
			current, err = entity.NewCycleConfig(duration, caller, uc.timeProvider)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := current.Change(duration, caller, uc.timeProvider); err != nil {
				return err
			}
		}

		if err := repo.Save(txCtx, current); err != nil {
			return err
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Cycle time updated", map[string]any{
		"cycle_seconds": int64(result.CycleDuration / time.Second),
		"version":       result.Version,
		"updated_by":    caller,
	})
	return result, nil
}

// CurrentCycle returns the configuration in effect
func (uc *CycleUseCase) CurrentCycle(ctx context.Context) (*entity.CycleConfig, error) {
	var current *entity.CycleConfig
	err := uc.retrier.Do(ctx, func() error {
		var err error
		current, err = uc.uow.GetConfigRepository(ctx).Get(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}
