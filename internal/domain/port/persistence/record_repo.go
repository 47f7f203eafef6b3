package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// RecordRepository stores lock records, partitioned by owner and keyed by start second
type RecordRepository interface {
	// Create inserts a new record
	//
	// Possible errors:
	// - ErrDuplicateRecord: If the owner already has a record at this start second
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, record *entity.Record) error

	// Get retrieves one record
	//
	// Possible errors:
	// - ErrRecordNotFound: If no record exists for the key
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, owner string, startTime int64) (*entity.Record, error)

	// GetForUpdate retrieves one record and locks its row until the surrounding transaction ends
	//
	// Possible errors:
	// - ErrRecordNotFound: If no record exists for the key
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, owner string, startTime int64) (*entity.Record, error)

	// Update persists the mutable fields (end time, repeat flag)
	//
	// Possible errors:
	// - ErrRecordNotFound: If the record vanished
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, record *entity.Record) error

	// Delete removes a record
	//
	// Possible errors:
	// - ErrRecordNotFound: If no record exists for the key
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, owner string, startTime int64) error

	// Exists reports whether a record exists for the key
	Exists(ctx context.Context, owner string, startTime int64) (bool, error)

	// ListByOwner returns the owner's records ordered by start time
	ListByOwner(ctx context.Context, owner string) ([]*entity.Record, error)

	// CountWithdrawable counts one-shot records whose end time is before now
	CountWithdrawable(ctx context.Context, now time.Time) (int64, error)
}
