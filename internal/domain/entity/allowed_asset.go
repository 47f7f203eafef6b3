package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
)

// AllowedAsset is one (issuer, symbol) pair the vault accepts deposits of
type AllowedAsset struct {
	ID        uint64 // Assigned by the store, never reused
	Issuer    string // Account of the token contract that notifies transfers
	Symbol    Symbol
	CreatedAt time.Time
}

// NewAllowedAsset validates the pair and returns an entry without an id
func NewAllowedAsset(issuer string, symbol Symbol, timeProvider coreport.TimeProvider) (*AllowedAsset, error) {
	if err := ValidateAccountName(issuer); err != nil {
		return nil, err
	}
	if _, err := NewSymbol(symbol.Precision, symbol.Code); err != nil {
		return nil, err
	}

	return &AllowedAsset{
		Issuer:    issuer,
		Symbol:    symbol,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Matches reports whether the entry covers the given issuer and symbol
func (a *AllowedAsset) Matches(issuer string, symbol Symbol) bool {
	return a.Issuer == issuer && a.Symbol == symbol
}
