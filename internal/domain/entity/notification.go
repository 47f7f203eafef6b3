package entity

import "time"

// ProcessedNotification remembers an inbound transfer that already produced a record,
// so a replayed notification is acknowledged instead of locking the funds twice.
type ProcessedNotification struct {
	TransferID  string
	Owner       string
	StartTime   time.Time
	ProcessedAt time.Time
}
