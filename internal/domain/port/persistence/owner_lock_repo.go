package persistence

import (
	"context"
	"time"
)

// OwnerLockRepository leases a depositor partition to one process at a time
type OwnerLockRepository interface {
	// AcquireLock takes the owner's lease for the given duration.
	// An expired lease held by someone else is taken over.
	//
	// Possible errors:
	// - ErrOwnerBusy: If an unexpired lease is held
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, owner string, duration time.Duration) error

	// ReleaseLock drops the lease; releasing a missing lease is not an error
	ReleaseLock(ctx context.Context, owner string) error
}
