package usecase

import (
	"context"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// TransferNotification is the ledger's report of a transfer touching the vault account
type TransferNotification struct {
	TransferID string // Ledger-assigned id, empty when the ledger does not provide one
	From       string
	To         string
	Issuer     string // Contract of the transferred asset, also the notifying caller
	Quantity   string // As sent by the ledger, e.g. "100.0000 TOK"; parsed only for the vault
	Memo       string
	Repeat     *bool // Overrides the legacy memo when set
}

// WantsRepeat resolves the repeat flag of the deposit
func (n TransferNotification) WantsRepeat() bool {
	if n.Repeat != nil {
		return *n.Repeat
	}
	return n.Memo == entity.RepeatMemo
}

// DepositResult describes what the intake did with a notification
type DepositResult struct {
	Applicable bool           // False when the transfer was not addressed to the vault
	Replayed   bool           // True when the transfer id was already processed
	Record     *entity.Record // Created or previously created record
}

// VaultUseCase defines the depositor-facing operations of the vault
type VaultUseCase interface {
	// HandleTransfer turns an inbound transfer into a lock record
	HandleTransfer(ctx context.Context, caller string, notification TransferNotification) (*DepositResult, error)

	// Withdraw pays a matured one-shot record back to its owner and deletes it
	Withdraw(ctx context.Context, caller, owner string, startTime int64) (*entity.Record, error)

	// ChangeRepeat toggles repeat mode of a record
	ChangeRepeat(ctx context.Context, caller, owner string, startTime int64, repeat bool) (*entity.Record, error)

	// RecordExists answers other systems asking whether a depositor holds a record in this vault
	RecordExists(ctx context.Context, vault, owner string, startTime int64) (bool, error)

	// ListRecords returns the owner's records ordered by start time
	ListRecords(ctx context.Context, owner string) ([]*entity.Record, error)

	// GetRecord returns one record
	GetRecord(ctx context.Context, owner string, startTime int64) (*entity.Record, error)
}
