package model

import (
	"time"
)

// AllowedAsset is the database model for an allowlist entry
type AllowedAsset struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	Issuer          string    `gorm:"size:12;not null;uniqueIndex:idx_allowed_assets_pair,priority:1"`
	SymbolCode      string    `gorm:"size:7;not null;uniqueIndex:idx_allowed_assets_pair,priority:2"`
	SymbolPrecision uint8     `gorm:"not null;uniqueIndex:idx_allowed_assets_pair,priority:3"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for AllowedAsset
func (AllowedAsset) TableName() string {
	return "allowed_assets"
}
