package config

import (
	"sync"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
)

var _ core.IdentityProvider = (*Identity)(nil)

// Identity holds the vault and administrator accounts for the whole process.
// It is read on every admin check, so a config reload takes effect immediately.
type Identity struct {
	mu           sync.RWMutex
	vaultAccount string
	adminAccount string
}

// NewIdentity creates the process identity from the loaded config
func NewIdentity(vault VaultConfig) *Identity {
	return &Identity{
		vaultAccount: vault.Account,
		adminAccount: vault.AdminAccount,
	}
}

// VaultAccount returns the account deposits are sent to
func (i *Identity) VaultAccount() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.vaultAccount
}

// AdminAccount returns the current administrator
func (i *Identity) AdminAccount() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.adminAccount
}

// Update replaces the administrator. The vault account can't move while records are held,
// so a changed vault account is ignored and reported back.
func (i *Identity) Update(vault VaultConfig) (adminChanged bool, vaultIgnored bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	vaultIgnored = vault.Account != "" && vault.Account != i.vaultAccount
	if entity.ValidateAccountName(vault.AdminAccount) != nil || vault.AdminAccount == i.adminAccount {
		return false, vaultIgnored
	}

	i.adminAccount = vault.AdminAccount
	return true, vaultIgnored
}
