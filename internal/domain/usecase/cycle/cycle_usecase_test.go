package cycle

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/safekeep/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contextKey string

const txKey contextKey = "tx"

func setup(t *testing.T) (*CycleUseCase, *persistencemocks.MockUnitOfWork, *persistencemocks.MockConfigRepository) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	configRepo := persistencemocks.NewMockConfigRepository(t)
	retrier := persistencemocks.NewMockRetrier(t)
	identity := coremocks.NewMockIdentityProvider(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetConfigRepository(mock.Anything).Return(configRepo).Maybe()
	retrier.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, op func() error) error {
		return op()
	}).Maybe()
	identity.EXPECT().AdminAccount().Return("admin").Maybe()
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewCycleUseCase(uow, retrier, identity, mockTime, logger), uow, configRepo
}

func TestSetCycleDuration(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")
	day := 24 * time.Hour

	t.Run("First initialization", func(t *testing.T) {
		uc, uow, repo := setup(t)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()
		repo.EXPECT().GetForUpdate(txCtx).Return(nil, errs.ErrCycleNotConfigured).Once()
		repo.EXPECT().Save(txCtx, mock.MatchedBy(func(cfg *entity.CycleConfig) bool {
			return cfg.CycleDuration == day && cfg.Version == 1
		})).Return(nil).Once()

		cfg, err := uc.SetCycleDuration(ctx, "admin", day)

		require.NoError(t, err)
		assert.Equal(t, day, cfg.CycleDuration)
		assert.Equal(t, uint64(1), cfg.Version)
		assert.Equal(t, "admin", cfg.UpdatedBy)
	})

	t.Run("Change bumps the version", func(t *testing.T) {
		uc, uow, repo := setup(t)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()
		repo.EXPECT().GetForUpdate(txCtx).Return(&entity.CycleConfig{CycleDuration: day, Version: 4}, nil).Once()
		repo.EXPECT().Save(txCtx, mock.Anything).Return(nil).Once()

		cfg, err := uc.SetCycleDuration(ctx, "admin", 2*day)

		require.NoError(t, err)
		assert.Equal(t, 2*day, cfg.CycleDuration)
		assert.Equal(t, uint64(5), cfg.Version)
	})

	t.Run("Same value is a no-op", func(t *testing.T) {
		uc, uow, repo := setup(t)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		repo.EXPECT().GetForUpdate(txCtx).Return(&entity.CycleConfig{CycleDuration: day, Version: 1}, nil).Once()

		cfg, err := uc.SetCycleDuration(ctx, "admin", day)

		assert.ErrorIs(t, err, errs.ErrNoOp)
		assert.Nil(t, cfg)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Zero duration", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.SetCycleDuration(ctx, "admin", 0)

		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
		assert.ErrorIs(t, err, errs.ErrInvalidValue)
	})

	t.Run("Non-admin caller", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.SetCycleDuration(ctx, "depositor", day)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestCurrentCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Configured", func(t *testing.T) {
		uc, _, repo := setup(t)
		expected := &entity.CycleConfig{CycleDuration: time.Hour, Version: 2}
		repo.EXPECT().Get(ctx).Return(expected, nil).Once()

		cfg, err := uc.CurrentCycle(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, cfg)
	})

	t.Run("Not configured", func(t *testing.T) {
		uc, _, repo := setup(t)
		repo.EXPECT().Get(ctx).Return(nil, errs.ErrCycleNotConfigured).Once()

		_, err := uc.CurrentCycle(ctx)

		assert.ErrorIs(t, err, errs.ErrCycleNotConfigured)
	})
}
