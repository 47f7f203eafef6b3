package model

import (
	"time"
)

// CycleConfigID is the key of the only row the cycle_configs table holds
const CycleConfigID = 1

// CycleConfig is the database model for the singleton cycle configuration
type CycleConfig struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false"`
	CycleSeconds int64     `gorm:"not null"`
	Version      uint64    `gorm:"not null"`
	UpdatedBy    string    `gorm:"size:12;not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for CycleConfig
func (CycleConfig) TableName() string {
	return "cycle_configs"
}
