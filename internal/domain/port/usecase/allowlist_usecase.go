package usecase

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// AllowlistUseCase curates the assets the vault accepts
type AllowlistUseCase interface {
	// AddAsset allowlists a pair; only the administrator may call it
	AddAsset(ctx context.Context, caller, issuer string, symbol entity.Symbol) (*entity.AllowedAsset, error)

	// RemoveAsset drops an entry by id; existing records are untouched
	RemoveAsset(ctx context.Context, caller string, id uint64) error

	// IsAllowed checks the pair against the allowlist
	IsAllowed(ctx context.Context, issuer string, symbol entity.Symbol) (bool, error)

	// ListAssets returns every allowlisted pair
	ListAssets(ctx context.Context) ([]*entity.AllowedAsset, error)
}
