package allowlist

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

// RemoveAsset drops an allowlist entry by id
func (uc *AllowlistUseCase) RemoveAsset(ctx context.Context, caller string, id uint64) error {
	if err := entity.RequireAuth(caller, uc.identity.AdminAccount()); err != nil {
		return err
	}

	err := unitofwork.Execute(ctx, uc.uow, uc.retrier, uc.logger, func(txCtx context.Context) error {
		return uc.uow.GetAssetRepository(txCtx).Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Asset removed from allowlist", map[string]any{
		"id": id,
	})
	return nil
}
