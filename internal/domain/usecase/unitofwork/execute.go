package unitofwork

import (
	"context"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
)

// Execute runs fn inside one database transaction. The transaction is committed when fn
// succeeds and rolled back otherwise, so a failed operation leaves no partial effect.
// With a non-nil retrier the whole transaction is re-run on transient storage errors;
// pass nil for operations with external side effects.
func Execute(
	ctx context.Context,
	uow persistence.UnitOfWork,
	retrier persistence.Retrier,
	logger coreport.Logger,
	fn func(txCtx context.Context) error,
) error {
	attempt := func() error {
		return executeOnce(ctx, uow, logger, fn)
	}
	if retrier == nil {
		return attempt()
	}
	return retrier.Do(ctx, attempt)
}

func executeOnce(
	ctx context.Context,
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	fn func(txCtx context.Context) error,
) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			logger.Error("Failed to rollback transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true
	return nil
}
