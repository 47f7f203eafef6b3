package persistence

import "context"

// Retrier re-runs an operation that failed on a transient storage error
// (serialization failure, deadlock, dropped connection). Business errors are returned as is.
type Retrier interface {
	Do(ctx context.Context, operation func() error) error
}
