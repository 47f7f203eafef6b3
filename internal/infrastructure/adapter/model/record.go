package model

import (
	"time"
)

// Record is the database model for a lock record.
// (owner, start_time) is the primary key; one depositor can't open two records in the same second.
type Record struct {
	Owner           string    `gorm:"primaryKey;size:12;not null"`
	StartTime       int64     `gorm:"primaryKey;autoIncrement:false;not null"`
	EndTime         int64     `gorm:"not null;index:idx_records_one_shot_end,where:repeat = false"`
	CycleSeconds    int64     `gorm:"not null"`
	ConfigVersion   uint64    `gorm:"not null"`
	Issuer          string    `gorm:"size:12;not null"`
	Amount          int64     `gorm:"not null"`
	SymbolCode      string    `gorm:"size:7;not null"`
	SymbolPrecision uint8     `gorm:"not null"`
	Repeat          bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Record
func (Record) TableName() string {
	return "records"
}
