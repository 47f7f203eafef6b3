package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidValue       = 4001
	CodeInvalidSymbol      = 4002
	CodeInvalidAccount     = 4003
	CodeInvalidDuration    = 4004
	CodeInvalidQuantity    = 4005
	CodeUnauthorized       = 4010
	CodeForbidden          = 4030
	CodeNotFound           = 4040
	CodeRecordNotFound     = 4041
	CodeAssetNotFound      = 4042
	CodeDuplicateEntry     = 4090
	CodeNoOp               = 4091
	CodeExpired            = 4092
	CodeCycleNotConfigured = 4093
	CodeUnsupportedAsset   = 4220
	CodeStillLocked        = 4230
	CodeNotMature          = 4231
	CodeOwnerBusy          = 4290

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeLedgerUnavailable = 5020
	CodeDatabase          = 5030
)

// Base error types
var (
	// ErrInvalidValue is the parent of every malformed-input error
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidSymbol is returned when an asset symbol is malformed
	ErrInvalidSymbol = fmt.Errorf("%w: invalid symbol name", ErrInvalidValue)

	// ErrInvalidAccount is returned when an account name is malformed or does not exist
	ErrInvalidAccount = fmt.Errorf("%w: account does not exist", ErrInvalidValue)

	// ErrInvalidDuration is returned when a cycle duration is not a positive number of seconds
	ErrInvalidDuration = fmt.Errorf("%w: positive cycle time must be set", ErrInvalidValue)

	// ErrInvalidQuantity is returned when a quantity is malformed or not positive
	ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrInvalidValue)

	// ErrUnauthorized is returned when the caller identity is missing or is not the required one
	ErrUnauthorized = errors.New("missing required authority")

	// ErrForbidden is a narrower ErrUnauthorized: the caller is known but is the wrong identity
	ErrForbidden = fmt.Errorf("%w: caller is not permitted", ErrUnauthorized)

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrRecordNotFound is returned when no record exists for the depositor and start time
	ErrRecordNotFound = fmt.Errorf("%w: record of the starttime does not exist", ErrNotFound)

	// ErrAssetNotFound is returned when no allowlist entry has the requested id
	ErrAssetNotFound = fmt.Errorf("%w: token of the id does not exist", ErrNotFound)

	// ErrDuplicateEntry is returned when a unique key would be violated
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrDuplicateAsset is returned when the (issuer, symbol) pair is already allowlisted
	ErrDuplicateAsset = fmt.Errorf("%w: token already exists", ErrDuplicateEntry)

	// ErrDuplicateRecord is returned when the depositor already has a record at this start time
	ErrDuplicateRecord = fmt.Errorf("%w: record already exists for this start time", ErrDuplicateEntry)

	// ErrNoOp is returned when the requested change equals the current state
	ErrNoOp = errors.New("requested value equals current value")

	// ErrUnsupportedAsset is returned when an inbound transfer carries a non-allowlisted asset
	ErrUnsupportedAsset = errors.New("this token is not supported")

	// ErrStillLocked is returned when withdrawing a record whose repeat mode is on
	ErrStillLocked = errors.New("can't withdraw when repeat is open")

	// ErrNotMature is returned when withdrawing a record before its end time has passed
	ErrNotMature = errors.New("record is not due and cannot be withdrawn")

	// ErrExpired is returned when re-enabling repeat on a record that has already matured
	ErrExpired = errors.New("repeat can't be reopened after the end time")

	// ErrCycleNotConfigured is returned when a deposit arrives before any cycle time was set
	ErrCycleNotConfigured = errors.New("cycle time is not configured")

	// ErrOwnerBusy is returned when a depositor partition is leased by another process
	ErrOwnerBusy = errors.New("depositor is locked by another operation")

	// ErrLedgerUnavailable is returned when the external ledger rejected or failed a call
	ErrLedgerUnavailable = errors.New("ledger call failed")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors.
// Children are matched before their parents.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSymbol):
		return CodeInvalidSymbol
	case errors.Is(err, ErrInvalidAccount):
		return CodeInvalidAccount
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidValue):
		return CodeInvalidValue
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrRecordNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrAssetNotFound):
		return CodeAssetNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateEntry):
		return CodeDuplicateEntry
	case errors.Is(err, ErrNoOp):
		return CodeNoOp
	case errors.Is(err, ErrExpired):
		return CodeExpired
	case errors.Is(err, ErrCycleNotConfigured):
		return CodeCycleNotConfigured
	case errors.Is(err, ErrUnsupportedAsset):
		return CodeUnsupportedAsset
	case errors.Is(err, ErrStillLocked):
		return CodeStillLocked
	case errors.Is(err, ErrNotMature):
		return CodeNotMature
	case errors.Is(err, ErrOwnerBusy):
		return CodeOwnerBusy
	case errors.Is(err, ErrLedgerUnavailable):
		return CodeLedgerUnavailable
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// RecordError describes a rejected operation on one lock record
type RecordError struct {
	Owner     string
	StartTime int64
	Operation string
	Err       error
}

// Error implements the error interface for RecordError
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s rejected for record %s@%d: %v", e.Operation, e.Owner, e.StartTime, e.Err)
}

// Unwrap returns the underlying error
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RecordError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "record_error",
		"owner":      e.Owner,
		"start_time": e.StartTime,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRecordError wraps err with the record it was raised for
func NewRecordError(operation, owner string, startTime int64, err error) error {
	return &RecordError{
		Owner:     owner,
		StartTime: startTime,
		Operation: operation,
		Err:       err,
	}
}

// AssetError describes a rejected allowlist or deposit operation for an asset
type AssetError struct {
	Issuer string
	Symbol string
	Err    error
}

// Error implements the error interface
func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %s@%s: %v", e.Symbol, e.Issuer, e.Err)
}

// Unwrap returns the underlying error
func (e *AssetError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AssetError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "asset_error",
		"issuer":     e.Issuer,
		"symbol":     e.Symbol,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAssetError creates a detailed asset error
func NewAssetError(issuer, symbol string, err error) error {
	return &AssetError{Issuer: issuer, Symbol: symbol, Err: err}
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidValueError checks if the error is any malformed-input error
func IsInvalidValueError(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsDuplicateError checks if the error is a unique-key violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsUnauthorizedError checks if the caller lacked the required authority
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsLockedError checks if the record can't be withdrawn yet
func IsLockedError(err error) bool {
	return errors.Is(err, ErrStillLocked) || errors.Is(err, ErrNotMature)
}
