package allowlist

import (
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/external"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
)

var _ usecase.AllowlistUseCase = (*AllowlistUseCase)(nil)

// AllowlistUseCase handles curation of the accepted assets
type AllowlistUseCase struct {
	uow          persistence.UnitOfWork
	retrier      persistence.Retrier
	ledger       external.Ledger
	identity     coreport.IdentityProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAllowlistUseCase creates a new allowlist use case
func NewAllowlistUseCase(
	uow persistence.UnitOfWork,
	retrier persistence.Retrier,
	ledger external.Ledger,
	identity coreport.IdentityProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AllowlistUseCase {
	return &AllowlistUseCase{
		uow:          uow,
		retrier:      retrier,
		ledger:       ledger,
		identity:     identity,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
