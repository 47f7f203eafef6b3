package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"UniqueViolationCode", &pgconn.PgError{Code: "23505", Message: "x"}, DuplicateKeyError},
		{"WrappedUniqueViolation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), DuplicateKeyError},
		{"DuplicateKeyText", errors.New(`duplicate key value violates unique constraint "records_pkey"`), DuplicateKeyError},
		{"SerializationCode", &pgconn.PgError{Code: "40001"}, LockError},
		{"DeadlockCode", &pgconn.PgError{Code: "40P01"}, LockError},
		{"SerializeText", errors.New("ERROR: could not serialize access due to concurrent update"), LockError},
		{"ConnectionReset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"UnexpectedEOF", errors.New("unexpected EOF"), TransientError},
		{"Dial", errors.New("dial tcp 10.0.0.1:5432"), ConnectionError},
		{"NotNull", &pgconn.PgError{Code: "23502"}, ConstraintError},
		{"Other", errors.New("syntax error at or near"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}

func TestIsContextError(t *testing.T) {
	assert.True(t, isContextError(context.Canceled))
	assert.True(t, isContextError(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.True(t, isContextError(errors.New("pq: context canceled")))
	assert.False(t, isContextError(errors.New("boom")))
	assert.False(t, isContextError(nil))
}

func TestWrapDatabaseError(t *testing.T) {
	err := wrapDatabaseError(errors.New("could not serialize access"))

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "could not serialize access")
}
