package persistence

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// AssetRepository stores the allowlist of accepted (issuer, symbol) pairs
type AssetRepository interface {
	// Create inserts the pair and assigns asset.ID
	//
	// Possible errors:
	// - ErrDuplicateAsset: If the pair is already allowlisted
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, asset *entity.AllowedAsset) error

	// Delete removes an entry by id
	//
	// Possible errors:
	// - ErrAssetNotFound: If no entry has the id
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// FindByPair looks the pair up through its composite index
	//
	// Possible errors:
	// - ErrAssetNotFound: If the pair is not allowlisted
	// - ErrDatabaseConnection: If database connection fails
	FindByPair(ctx context.Context, issuer string, symbol entity.Symbol) (*entity.AllowedAsset, error)

	// List returns every entry ordered by id
	List(ctx context.Context) ([]*entity.AllowedAsset, error)
}
