package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.AssetRepository = (*AssetRepository)(nil)

// AssetRepository implements persistence.AssetRepository using GORM
type AssetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAssetRepository creates a new AssetRepository instance
func NewAssetRepository(db *gorm.DB, logger coreport.Logger) *AssetRepository {
	return &AssetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func assetToEntity(m *model.AllowedAsset) *entity.AllowedAsset {
	return &entity.AllowedAsset{
		ID:        m.ID,
		Issuer:    m.Issuer,
		Symbol:    entity.Symbol{Precision: m.SymbolPrecision, Code: m.SymbolCode},
		CreatedAt: m.CreatedAt,
	}
}

func (r *AssetRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAssetNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAsset
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()
	r.logger.Error("Database error on allowed assets", fields)
	return wrapDatabaseError(err)
}

// Create inserts the pair and assigns asset.ID
func (r *AssetRepository) Create(ctx context.Context, asset *entity.AllowedAsset) error {
	row := model.AllowedAsset{
		Issuer:          asset.Issuer,
		SymbolCode:      asset.Symbol.Code,
		SymbolPrecision: asset.Symbol.Precision,
		CreatedAt:       asset.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.handleDatabaseError("create", err, map[string]any{
			"issuer": asset.Issuer,
			"symbol": asset.Symbol.String(),
		})
	}

	asset.ID = row.ID
	return nil
}

// Delete removes an entry by id
func (r *AssetRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.AllowedAsset{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, map[string]any{"id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrAssetNotFound
	}
	return nil
}

// FindByPair looks the pair up through the unique composite index
func (r *AssetRepository) FindByPair(ctx context.Context, issuer string, symbol entity.Symbol) (*entity.AllowedAsset, error) {
	var row model.AllowedAsset
	err := r.db.WithContext(ctx).
		Where("issuer = ? AND symbol_code = ? AND symbol_precision = ?", issuer, symbol.Code, symbol.Precision).
		First(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("find_by_pair", err, map[string]any{
			"issuer": issuer,
			"symbol": symbol.String(),
		})
	}
	return assetToEntity(&row), nil
}

// List returns every entry ordered by id
func (r *AssetRepository) List(ctx context.Context) ([]*entity.AllowedAsset, error) {
	var rows []model.AllowedAsset
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("list", err, nil)
	}

	assets := make([]*entity.AllowedAsset, 0, len(rows))
	for i := range rows {
		assets = append(assets, assetToEntity(&rows[i]))
	}
	return assets, nil
}
