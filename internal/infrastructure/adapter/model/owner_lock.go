package model

import (
	"time"
)

// OwnerLock leases one depositor partition to a single process
type OwnerLock struct {
	Owner     string    `gorm:"primaryKey;size:12;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for OwnerLock
func (OwnerLock) TableName() string {
	return "owner_locks"
}
