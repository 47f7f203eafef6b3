package external

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// TransferRequest moves quantity of the asset held by Contract from one account to another
type TransferRequest struct {
	Contract string
	From     string
	To       string
	Quantity entity.Quantity
	Memo     string

	// IdempotencyKey identifies the payout; the ledger executes a key at most once
	IdempotencyKey string
}

// Ledger is the external asset ledger the vault pays withdrawals through
type Ledger interface {
	// Transfer executes the transfer. A rejection means it did not happen; a timeout or a
	// lost connection leaves the outcome unknown, and a later call with the same
	// IdempotencyKey settles it without paying twice.
	//
	// Possible errors:
	// - ErrLedgerUnavailable: If the ledger rejected the transfer or could not be reached
	Transfer(ctx context.Context, req TransferRequest) error

	// AccountExists reports whether the ledger knows the account
	AccountExists(ctx context.Context, account string) (bool, error)
}
