package dto

import (
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// CycleRequest represents the API request for setting the cycle duration
type CycleRequest struct {
	CycleSeconds *int64 `json:"cycleSeconds" binding:"required"`
}

// CycleResponse represents the cycle configuration in effect
type CycleResponse struct {
	CycleSeconds int64     `json:"cycleSeconds"`
	Version      uint64    `json:"version"`
	UpdatedBy    string    `json:"updatedBy"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AssetRequest represents the API request for allowlisting an asset
type AssetRequest struct {
	Issuer string `json:"issuer" binding:"required"`
	Symbol string `json:"symbol" binding:"required"` // "<precision>,<CODE>", e.g. "4,TOK"
}

// AssetResponse represents one allowlist entry
type AssetResponse struct {
	ID        uint64    `json:"id"`
	Issuer    string    `json:"issuer"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssetListResponse lists the allowlist
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// NewCycleResponse maps the cycle configuration
func NewCycleResponse(c *entity.CycleConfig) CycleResponse {
	return CycleResponse{
		CycleSeconds: int64(c.CycleDuration / time.Second),
		Version:      c.Version,
		UpdatedBy:    c.UpdatedBy,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewAssetResponse maps an allowlist entry
func NewAssetResponse(a *entity.AllowedAsset) AssetResponse {
	return AssetResponse{
		ID:        a.ID,
		Issuer:    a.Issuer,
		Symbol:    a.Symbol.String(),
		CreatedAt: a.CreatedAt,
	}
}

// NewAssetListResponse maps the allowlist, never returning a null list
func NewAssetListResponse(assets []*entity.AllowedAsset) AssetListResponse {
	resp := AssetListResponse{Assets: make([]AssetResponse, 0, len(assets))}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, NewAssetResponse(a))
	}
	return resp
}
