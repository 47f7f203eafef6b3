package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

// HandleTransfer turns an inbound transfer into a lock record.
// Transfers not addressed to the vault are acknowledged and ignored.
// Any error rejects the transfer as a whole.
func (uc *VaultUseCase) HandleTransfer(
	ctx context.Context,
	caller string,
	notification usecase.TransferNotification,
) (*usecase.DepositResult, error) {
	if err := entity.RequireAuth(caller, notification.Issuer); err != nil {
		return nil, err
	}

	if notification.To != uc.identity.VaultAccount() {
		uc.logger.Debug("Ignoring transfer not addressed to the vault", map[string]any{
			"transfer_id": notification.TransferID,
			"to":          notification.To,
		})
		return &usecase.DepositResult{Applicable: false}, nil
	}

	quantity, err := uc.validateDeposit(notification)
	if err != nil {
		return nil, err
	}

	var result *usecase.DepositResult
	err = uc.sequencer.Enqueue(ctx, notification.From, func(opCtx context.Context) error {
		return unitofwork.Execute(opCtx, uc.uow, uc.retrier, uc.logger, func(txCtx context.Context) error {
			existing, found, err := uc.idempotency.CheckIdempotency(txCtx, notification.TransferID)
			if err != nil {
				return err
			}
			if found {
				result = &usecase.DepositResult{Applicable: true, Replayed: true, Record: existing}
				return nil
			}

			// read in the deposit transaction so a concurrent removal can't slip past
			_, err = uc.uow.GetAssetRepository(txCtx).FindByPair(txCtx, notification.Issuer, quantity.Symbol)
			if errors.Is(err, errs.ErrAssetNotFound) {
				return errs.NewAssetError(notification.Issuer, quantity.Symbol.String(), errs.ErrUnsupportedAsset)
			}
			if err != nil {
				return err
			}

			config, err := uc.uow.GetConfigRepository(txCtx).Get(txCtx)
			if err != nil {
				return err
			}

			record, err := entity.NewRecord(
				notification.From,
				notification.Issuer,
				quantity,
				config,
				notification.WantsRepeat(),
				uc.timeProvider,
			)
			if err != nil {
				return err
			}

			if err := uc.uow.GetRecordRepository(txCtx).Create(txCtx, record); err != nil {
				return err
			}
			if err := uc.idempotency.MarkProcessed(txCtx, notification.TransferID, record, record.CreatedAt); err != nil {
				return err
			}

			result = &usecase.DepositResult{Applicable: true, Record: record}
			return nil
		})
	})
	if err != nil {
		uc.logger.Error("Deposit rejected", map[string]any{
			"transfer_id": notification.TransferID,
			"owner":       notification.From,
			"quantity":    notification.Quantity,
			"error":       err.Error(),
		})
		return nil, err
	}

	if result.Replayed {
		uc.logger.Info("Transfer already processed", map[string]any{
			"transfer_id": notification.TransferID,
			"owner":       notification.From,
		})
		return result, nil
	}

	uc.logger.Info("Deposit locked", map[string]any{
		"transfer_id": notification.TransferID,
		"owner":       result.Record.Owner,
		"start_time":  result.Record.StartTime.Unix(),
		"end_time":    result.Record.EndTime.Unix(),
		"quantity":    result.Record.Quantity.String(),
		"repeat":      result.Record.Repeat,
	})
	return result, nil
}

// validateDeposit parses the quantity as the ledger sent it and checks the depositor
func (uc *VaultUseCase) validateDeposit(notification usecase.TransferNotification) (entity.Quantity, error) {
	if err := entity.ValidateAccountName(notification.From); err != nil {
		return entity.Quantity{}, err
	}

	quantity, err := entity.ParseQuantity(notification.Quantity)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSymbol) {
			return entity.Quantity{}, errs.NewAssetError(notification.Issuer, notification.Quantity, err)
		}
		return entity.Quantity{}, err
	}
	if !quantity.IsPositive() {
		return entity.Quantity{}, fmt.Errorf("%w: must transfer positive quantity", errs.ErrInvalidQuantity)
	}
	return quantity, nil
}
