package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	valid := []string{"a", "eosio.token", "safekeep", "abcde1234512", "a.b.c"}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, ValidateAccountName(name))
		})
	}

	invalid := []string{"", "abcde12345123", "Alice", "bob6", "trailing.", "has space", "under_score"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			err := ValidateAccountName(name)
			assert.ErrorIs(t, err, errs.ErrInvalidAccount)
			assert.ErrorIs(t, err, errs.ErrInvalidValue)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("Matching caller", func(t *testing.T) {
		assert.NoError(t, RequireAuth("admin", "admin"))
	})

	t.Run("Missing caller", func(t *testing.T) {
		err := RequireAuth("", "admin")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.NotErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Wrong caller", func(t *testing.T) {
		err := RequireAuth("mallory", "admin")
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "admin required")
	})
}
