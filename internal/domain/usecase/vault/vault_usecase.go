package vault

import (
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/external"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
)

var _ usecase.VaultUseCase = (*VaultUseCase)(nil)

// VaultUseCase ties deposit intake, the lock state machine and record queries together.
// Every mutation of a depositor's records goes through the sequencer.
type VaultUseCase struct {
	uow          persistence.UnitOfWork
	retrier      persistence.Retrier
	ledger       external.Ledger
	identity     coreport.IdentityProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	sequencer    *Sequencer
	idempotency  *IdempotencyHandler
	withdrawMemo string
}

// NewVaultUseCase creates a new VaultUseCase
func NewVaultUseCase(
	uow persistence.UnitOfWork,
	ownerLockRepo persistence.OwnerLockRepository,
	retrier persistence.Retrier,
	ledger external.Ledger,
	identity coreport.IdentityProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *VaultUseCase {
	return &VaultUseCase{
		uow:          uow,
		retrier:      retrier,
		ledger:       ledger,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
		sequencer:    NewSequencer(ownerLockRepo, timeProvider, logger),
		idempotency:  NewIdempotencyHandler(uow),
		withdrawMemo: entity.WithdrawMemo,
	}
}

// WithWithdrawMemo overrides the memo attached to withdrawal transfers
func (uc *VaultUseCase) WithWithdrawMemo(memo string) *VaultUseCase {
	if memo != "" {
		uc.withdrawMemo = memo
	}
	return uc
}

// WithOwnerLockTimeout sets the lease duration taken per operation
func (uc *VaultUseCase) WithOwnerLockTimeout(timeout time.Duration) *VaultUseCase {
	uc.sequencer.WithLockTimeout(timeout)
	return uc
}

// WithQueueSize sets the per-depositor queue capacity
func (uc *VaultUseCase) WithQueueSize(size int) *VaultUseCase {
	uc.sequencer.WithQueueSize(size)
	return uc
}

// Shutdown drains the per-depositor queues
func (uc *VaultUseCase) Shutdown() {
	uc.sequencer.Shutdown()
}
