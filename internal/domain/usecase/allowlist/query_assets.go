package allowlist

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
)

// IsAllowed looks the pair up through the composite index
func (uc *AllowlistUseCase) IsAllowed(ctx context.Context, issuer string, symbol entity.Symbol) (bool, error) {
	allowed := false
	err := uc.retrier.Do(ctx, func() error {
		_, err := uc.uow.GetAssetRepository(ctx).FindByPair(ctx, issuer, symbol)
		switch {
		case err == nil:
			allowed = true
			return nil
		case errors.Is(err, errs.ErrAssetNotFound):
			allowed = false
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return allowed, nil
}

// ListAssets returns every allowlisted pair ordered by id
func (uc *AllowlistUseCase) ListAssets(ctx context.Context) ([]*entity.AllowedAsset, error) {
	var assets []*entity.AllowedAsset
	err := uc.retrier.Do(ctx, func() error {
		var err error
		assets, err = uc.uow.GetAssetRepository(ctx).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}
