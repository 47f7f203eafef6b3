package unitofwork

import (
	"context"
	"errors"
	"testing"

	mcore "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	mpers "github.com/amirhossein-jamali/safekeep/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type contextKey string

const txKey contextKey = "tx"

func TestExecute(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")

	t.Run("Commits on success", func(t *testing.T) {
		uow := mpers.NewMockUnitOfWork(t)
		logger := mcore.NewMockLogger(t)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		uow.EXPECT().Commit(txCtx).Return(nil)

		var seen context.Context
		err := Execute(ctx, uow, nil, logger, func(c context.Context) error {
			seen = c
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, txCtx, seen)
	})

	t.Run("Rolls back on failure", func(t *testing.T) {
		uow := mpers.NewMockUnitOfWork(t)
		logger := mcore.NewMockLogger(t)
		opErr := errors.New("boom")
		uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		uow.EXPECT().Rollback(txCtx).Return(nil)

		err := Execute(ctx, uow, nil, logger, func(context.Context) error { return opErr })

		assert.ErrorIs(t, err, opErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Rolls back when commit fails", func(t *testing.T) {
		uow := mpers.NewMockUnitOfWork(t)
		logger := mcore.NewMockLogger(t)
		commitErr := errors.New("could not serialize access")
		uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		uow.EXPECT().Commit(txCtx).Return(commitErr)
		uow.EXPECT().Rollback(txCtx).Return(errors.New("already been committed or rolled back"))
		logger.EXPECT().Error(mock.Anything, mock.Anything).Return()

		err := Execute(ctx, uow, nil, logger, func(context.Context) error { return nil })

		assert.ErrorIs(t, err, commitErr)
	})

	t.Run("Begin failure skips the operation", func(t *testing.T) {
		uow := mpers.NewMockUnitOfWork(t)
		logger := mcore.NewMockLogger(t)
		uow.EXPECT().Begin(ctx).Return(ctx, errors.New("connection refused"))

		called := false
		err := Execute(ctx, uow, nil, logger, func(context.Context) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("Retrier re-runs the whole transaction", func(t *testing.T) {
		uow := mpers.NewMockUnitOfWork(t)
		logger := mcore.NewMockLogger(t)
		retrier := mpers.NewMockRetrier(t)
		retrier.EXPECT().Do(ctx, mock.Anything).RunAndReturn(func(c context.Context, op func() error) error {
			if err := op(); err == nil {
				return errors.New("expected first attempt to fail")
			}
			return op()
		})
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(2)
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		attempts := 0
		err := Execute(ctx, uow, retrier, logger, func(context.Context) error {
			attempts++
			if attempts == 1 {
				return errors.New("deadlock detected")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})
}
