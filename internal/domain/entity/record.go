package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
)

// RepeatMemo is the legacy transfer memo that opts a deposit into repeat mode
const RepeatMemo = "1"

// WithdrawMemo tags the transfer that pays a matured record back
const WithdrawMemo = "withdraw token"

// RecordState is the lock state of a record
type RecordState string

// Record states
const (
	StateLockedOneShot   RecordState = "LOCKED_ONESHOT"
	StateLockedRepeating RecordState = "LOCKED_REPEATING"
)

// Record is one locked deposit, owned by the depositor that made it.
// StartTime is the key within the owner's partition; times carry whole seconds.
type Record struct {
	Owner         string        // Depositor account
	StartTime     time.Time     // Moment of deposit
	EndTime       time.Time     // Maturity instant
	CycleDuration time.Duration // Copied from the cycle config at creation, never changed
	ConfigVersion uint64        // Version of the cycle config that was copied
	Issuer        string        // Token contract that holds the asset
	Quantity      Quantity
	Repeat        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecord opens a lock starting now and maturing one cycle later
func NewRecord(
	owner string,
	issuer string,
	quantity Quantity,
	config *CycleConfig,
	repeat bool,
	timeProvider coreport.TimeProvider,
) (*Record, error) {
	if err := ValidateAccountName(owner); err != nil {
		return nil, err
	}
	if err := ValidateAccountName(issuer); err != nil {
		return nil, err
	}
	if !quantity.Symbol.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, quantity.Symbol.String())
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: must transfer positive quantity", errs.ErrInvalidQuantity)
	}
	if config == nil {
		return nil, errs.ErrCycleNotConfigured
	}

	now := timeProvider.Now()
	start := now.Truncate(time.Second)
	return &Record{
		Owner:         owner,
		StartTime:     start,
		EndTime:       start.Add(config.CycleDuration),
		CycleDuration: config.CycleDuration,
		ConfigVersion: config.Version,
		Issuer:        issuer,
		Quantity:      quantity,
		Repeat:        repeat,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// State returns the record's lock state
func (r *Record) State() RecordState {
	if r.Repeat {
		return StateLockedRepeating
	}
	return StateLockedOneShot
}

// IsMature reports whether now, at second resolution, is strictly after the end time
func (r *Record) IsMature(now time.Time) bool {
	return now.Truncate(time.Second).After(r.EndTime)
}

// CheckWithdrawable fails with ErrStillLocked while repeating and ErrNotMature until end time has passed
func (r *Record) CheckWithdrawable(now time.Time) error {
	if r.Repeat {
		return errs.ErrStillLocked
	}
	if !r.IsMature(now) {
		return errs.ErrNotMature
	}
	return nil
}

// ChangeRepeat applies a repeat toggle at the given instant
func (r *Record) ChangeRepeat(repeat bool, now time.Time) error {
	if r.Repeat == repeat {
		return fmt.Errorf("%w: can't change to the same repeat", errs.ErrNoOp)
	}
	now = now.Truncate(time.Second)
	if repeat {
		return r.enableRepeat(now)
	}
	r.disableRepeat(now)
	return nil
}

// enableRepeat keeps the end time; a record already past it can't be re-locked
func (r *Record) enableRepeat(now time.Time) error {
	if r.EndTime.Before(now) {
		return errs.ErrExpired
	}
	r.Repeat = true
	r.UpdatedAt = now
	return nil
}

// disableRepeat moves the end time to the first cycle boundary not before now
func (r *Record) disableRepeat(now time.Time) {
	r.EndTime = NextBoundary(r.EndTime, r.CycleDuration, now)
	r.Repeat = false
	r.UpdatedAt = now
}

// NextBoundary returns end advanced by the fewest whole cycles so that it is not before now
func NextBoundary(end time.Time, cycle time.Duration, now time.Time) time.Time {
	if !end.Before(now) || cycle <= 0 {
		return end
	}
	elapsed := now.Sub(end)
	cycles := (elapsed + cycle - 1) / cycle
	return end.Add(cycles * cycle)
}

// Key returns the owner partition and the unix start second that identify the record
func (r *Record) Key() (string, int64) {
	return r.Owner, r.StartTime.Unix()
}
