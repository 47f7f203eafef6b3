package vault

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// RecordExists answers whether the owner holds a record starting at startTime in the named vault.
// Any other vault name yields false.
func (uc *VaultUseCase) RecordExists(ctx context.Context, vault, owner string, startTime int64) (bool, error) {
	if vault != uc.identity.VaultAccount() {
		return false, nil
	}
	if err := entity.ValidateAccountName(owner); err != nil {
		return false, nil
	}

	var exists bool
	err := uc.retrier.Do(ctx, func() error {
		var err error
		exists, err = uc.uow.GetRecordRepository(ctx).Exists(ctx, owner, startTime)
		return err
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListRecords returns the owner's records ordered by start time
func (uc *VaultUseCase) ListRecords(ctx context.Context, owner string) ([]*entity.Record, error) {
	if err := entity.ValidateAccountName(owner); err != nil {
		return nil, err
	}

	var records []*entity.Record
	err := uc.retrier.Do(ctx, func() error {
		var err error
		records, err = uc.uow.GetRecordRepository(ctx).ListByOwner(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord returns one record
func (uc *VaultUseCase) GetRecord(ctx context.Context, owner string, startTime int64) (*entity.Record, error) {
	var record *entity.Record
	err := uc.retrier.Do(ctx, func() error {
		var err error
		record, err = uc.uow.GetRecordRepository(ctx).Get(ctx, owner, startTime)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
