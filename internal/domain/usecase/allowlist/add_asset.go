package allowlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/unitofwork"
)

// AddAsset allowlists an (issuer, symbol) pair
func (uc *AllowlistUseCase) AddAsset(
	ctx context.Context,
	caller string,
	issuer string,
	symbol entity.Symbol,
) (*entity.AllowedAsset, error) {
	if err := entity.RequireAuth(caller, uc.identity.AdminAccount()); err != nil {
		return nil, err
	}

	asset, err := entity.NewAllowedAsset(issuer, symbol, uc.timeProvider)
	if err != nil {
		return nil, errs.NewAssetError(issuer, symbol.String(), err)
	}

	exists, err := uc.ledger.AccountExists(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to check issuer account: %w", err)
	}
	if !exists {
		return nil, errs.NewAssetError(issuer, symbol.String(), errs.ErrInvalidAccount)
	}

	err = unitofwork.Execute(ctx, uc.uow, uc.retrier, uc.logger, func(txCtx context.Context) error {
		repo := uc.uow.GetAssetRepository(txCtx)

		_, err := repo.FindByPair(txCtx, issuer, symbol)
		if err == nil {
			return errs.ErrDuplicateAsset
		}
		if !errors.Is(err, errs.ErrAssetNotFound) {
			return err
		}

		return repo.Create(txCtx, asset)
	})
	if err != nil {
		return nil, errs.NewAssetError(issuer, symbol.String(), err)
	}

	uc.logger.Info("Asset added to allowlist", map[string]any{
		"id":     asset.ID,
		"issuer": issuer,
		"symbol": symbol.String(),
	})
	return asset, nil
}
