package model

import (
	"time"
)

// MigrationVersion records one applied schema migration
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string    `gorm:"type:text;null"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
