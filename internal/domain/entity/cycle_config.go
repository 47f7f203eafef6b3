package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
)

// CycleConfig is the vault-wide lock duration applied to new records.
// Version starts at 1 and grows by one with every accepted change.
type CycleConfig struct {
	CycleDuration time.Duration
	Version       uint64
	UpdatedBy     string
	UpdatedAt     time.Time
}

// ValidateCycleDuration requires a positive whole number of seconds
func ValidateCycleDuration(d time.Duration) error {
	if d <= 0 {
		return errs.ErrInvalidDuration
	}
	if d%time.Second != 0 {
		return fmt.Errorf("%w: %s is not a whole number of seconds", errs.ErrInvalidDuration, d)
	}
	return nil
}

// NewCycleConfig creates the first configuration, version 1
func NewCycleConfig(d time.Duration, updatedBy string, timeProvider coreport.TimeProvider) (*CycleConfig, error) {
	if err := ValidateCycleDuration(d); err != nil {
		return nil, err
	}

	return &CycleConfig{
		CycleDuration: d,
		Version:       1,
		UpdatedBy:     updatedBy,
		UpdatedAt:     timeProvider.Now(),
	}, nil
}

// Change replaces the duration; equal values are rejected with ErrNoOp
func (c *CycleConfig) Change(d time.Duration, updatedBy string, timeProvider coreport.TimeProvider) error {
	if err := ValidateCycleDuration(d); err != nil {
		return err
	}
	if d == c.CycleDuration {
		return fmt.Errorf("%w: can't set same cycle time", errs.ErrNoOp)
	}

	c.CycleDuration = d
	c.Version++
	c.UpdatedBy = updatedBy
	c.UpdatedAt = timeProvider.Now()
	return nil
}
