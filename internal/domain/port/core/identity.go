package core

// IdentityProvider resolves the accounts the vault acts for and answers to.
// Implementations may change the administrator at runtime; callers must not cache it.
type IdentityProvider interface {
	// VaultAccount is the account deposits are sent to and withdrawals are paid from
	VaultAccount() string
	// AdminAccount is the single identity allowed to curate assets and the cycle time
	AdminAccount() string
}
