package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock for the domain.
// Maturity is always decided against Now(); nothing in the domain sleeps until a record matures.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
