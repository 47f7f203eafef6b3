package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/external"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

// Withdraw pays a matured one-shot record back to its owner and deletes it.
// The record row stays locked from the maturity check until commit; the delete is
// rolled back when the ledger refuses the transfer. Never retried.
func (uc *VaultUseCase) Withdraw(
	ctx context.Context,
	caller string,
	owner string,
	startTime int64,
) (*entity.Record, error) {
	if err := entity.RequireAuth(caller, owner); err != nil {
		return nil, err
	}

	var withdrawn *entity.Record
	err := uc.sequencer.Enqueue(ctx, owner, func(opCtx context.Context) error {
		return unitofwork.Execute(opCtx, uc.uow, nil, uc.logger, func(txCtx context.Context) error {
			records := uc.uow.GetRecordRepository(txCtx)

			record, err := records.GetForUpdate(txCtx, owner, startTime)
			if err != nil {
				return err
			}
			if err := record.CheckWithdrawable(uc.timeProvider.Now()); err != nil {
				return err
			}

			if err := records.Delete(txCtx, owner, startTime); err != nil {
				return err
			}

			err = uc.ledger.Transfer(txCtx, external.TransferRequest{
				Contract: record.Issuer,
				From:     uc.identity.VaultAccount(),
				To:       owner,
				Quantity: record.Quantity,
				Memo:     uc.withdrawMemo,

				IdempotencyKey: WithdrawKey(owner, startTime),
			})
			if err != nil {
				if errors.Is(err, errs.ErrLedgerUnavailable) {
					return err
				}
				return fmt.Errorf("%w: %v", errs.ErrLedgerUnavailable, err)
			}

			withdrawn = record
			return nil
		})
	})
	if err != nil {
		recordErr := errs.NewRecordError("withdraw", owner, startTime, err)
		if withdrawn != nil {
			// the ledger paid out but the delete never committed
			fields := errs.LogFields(recordErr)
			fields["quantity"] = withdrawn.Quantity.String()
			fields["issuer"] = withdrawn.Issuer
			uc.logger.Error("Withdraw paid but not committed, reconcile record", fields)
			return nil, recordErr
		}
		uc.logger.Warn("Withdraw rejected", errs.LogFields(recordErr))
		return nil, recordErr
	}

	uc.logger.Info("Record withdrawn", map[string]any{
		"owner":      owner,
		"start_time": startTime,
		"quantity":   withdrawn.Quantity.String(),
		"issuer":     withdrawn.Issuer,
	})
	return withdrawn, nil
}

// WithdrawKey names the payout of one record. A record is withdrawn at most once, so a
// repeated attempt after an unknown ledger outcome reuses the key.
func WithdrawKey(owner string, startTime int64) string {
	return fmt.Sprintf("withdraw/%s/%d", owner, startTime)
}
