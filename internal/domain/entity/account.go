package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
)

// maxAccountNameLength is the longest account name the ledger issues
const maxAccountNameLength = 12

// ValidateAccountName checks the ledger's account-name charset: 1-12 of [.1-5a-z], no trailing dot
func ValidateAccountName(name string) error {
	if len(name) == 0 || len(name) > maxAccountNameLength {
		return fmt.Errorf("%w: %q", errs.ErrInvalidAccount, name)
	}
	for _, c := range name {
		if !isAccountChar(c) {
			return fmt.Errorf("%w: %q", errs.ErrInvalidAccount, name)
		}
	}
	if name[len(name)-1] == '.' {
		return fmt.Errorf("%w: %q", errs.ErrInvalidAccount, name)
	}
	return nil
}

func isAccountChar(c rune) bool {
	return c == '.' || (c >= '1' && c <= '5') || (c >= 'a' && c <= 'z')
}

// RequireAuth fails unless the caller is exactly the required account
func RequireAuth(caller, required string) error {
	if caller == "" {
		return errs.ErrUnauthorized
	}
	if caller != required {
		return fmt.Errorf("%w: %s required", errs.ErrForbidden, required)
	}
	return nil
}
