package model

import (
	"time"
)

// ProcessedNotification remembers an inbound transfer that already produced a record
type ProcessedNotification struct {
	TransferID  string    `gorm:"primaryKey;size:255"`
	Owner       string    `gorm:"size:12;not null"`
	StartTime   int64     `gorm:"not null"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProcessedNotification
func (ProcessedNotification) TableName() string {
	return "processed_notifications"
}
