package vault

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

// ChangeRepeat switches repeat mode of a record on or off
func (uc *VaultUseCase) ChangeRepeat(
	ctx context.Context,
	caller string,
	owner string,
	startTime int64,
	repeat bool,
) (*entity.Record, error) {
	if err := entity.RequireAuth(caller, owner); err != nil {
		return nil, err
	}

	var updated *entity.Record
	err := uc.sequencer.Enqueue(ctx, owner, func(opCtx context.Context) error {
		return unitofwork.Execute(opCtx, uc.uow, uc.retrier, uc.logger, func(txCtx context.Context) error {
			records := uc.uow.GetRecordRepository(txCtx)

			record, err := records.GetForUpdate(txCtx, owner, startTime)
			if err != nil {
				return err
			}
			if err := record.ChangeRepeat(repeat, uc.timeProvider.Now()); err != nil {
				return err
			}
			if err := records.Update(txCtx, record); err != nil {
				return err
			}

			updated = record
			return nil
		})
	})
	if err != nil {
		recordErr := errs.NewRecordError("changerepeat", owner, startTime, err)
		uc.logger.Warn("Repeat change rejected", errs.LogFields(recordErr))
		return nil, recordErr
	}

	uc.logger.Info("Record repeat changed", map[string]any{
		"owner":      owner,
		"start_time": startTime,
		"repeat":     updated.Repeat,
		"end_time":   updated.EndTime.Unix(),
	})
	return updated, nil
}
