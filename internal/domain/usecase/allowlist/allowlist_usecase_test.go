package allowlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/safekeep/mocks/port/external"
	persistencemocks "github.com/amirhossein-jamali/safekeep/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contextKey string

const txKey contextKey = "tx"

type fixture struct {
	uow       *persistencemocks.MockUnitOfWork
	assetRepo *persistencemocks.MockAssetRepository
	retrier   *persistencemocks.MockRetrier
	ledger    *externalmocks.MockLedger
	identity  *coremocks.MockIdentityProvider
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
	useCase   *AllowlistUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		assetRepo: persistencemocks.NewMockAssetRepository(t),
		retrier:   persistencemocks.NewMockRetrier(t),
		ledger:    externalmocks.NewMockLedger(t),
		identity:  coremocks.NewMockIdentityProvider(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}
	f.identity.EXPECT().AdminAccount().Return("admin").Maybe()
	f.time.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	f.retrier.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, op func() error) error {
		return op()
	}).Maybe()
	f.uow.EXPECT().GetAssetRepository(mock.Anything).Return(f.assetRepo).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.useCase = NewAllowlistUseCase(f.uow, f.retrier, f.ledger, f.identity, f.time, f.logger)
	return f
}

func (f *fixture) expectTransaction(ctx context.Context, commit bool) context.Context {
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	if commit {
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
	}
	return txCtx
}

func TestAddAsset(t *testing.T) {
	ctx := context.Background()
	tok := entity.Symbol{Precision: 4, Code: "TOK"}

	t.Run("Admin adds a new pair", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.expectTransaction(ctx, true)
		f.ledger.EXPECT().AccountExists(ctx, "eosio.token").Return(true, nil).Once()
		f.assetRepo.EXPECT().FindByPair(txCtx, "eosio.token", tok).Return(nil, errs.ErrAssetNotFound).Once()
		f.assetRepo.EXPECT().Create(txCtx, mock.AnythingOfType("*entity.AllowedAsset")).
			RunAndReturn(func(_ context.Context, asset *entity.AllowedAsset) error {
				asset.ID = 7
				return nil
			}).Once()

		asset, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), asset.ID)
		assert.True(t, asset.Matches("eosio.token", tok))
	})

	t.Run("Non-admin caller", func(t *testing.T) {
		f := newFixture(t)

		asset, err := f.useCase.AddAsset(ctx, "mallory", "eosio.token", tok)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, asset)
	})

	t.Run("Malformed symbol", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", entity.Symbol{Precision: 4, Code: "tok"})

		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
	})

	t.Run("Issuer unknown to the ledger", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().AccountExists(ctx, "ghost").Return(false, nil).Once()

		_, err := f.useCase.AddAsset(ctx, "admin", "ghost", tok)

		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
		var assetErr *errs.AssetError
		require.True(t, errors.As(err, &assetErr))
		assert.Equal(t, "ghost", assetErr.Issuer)
	})

	t.Run("Ledger unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().AccountExists(ctx, "eosio.token").Return(false, errs.ErrLedgerUnavailable).Once()

		_, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)

		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})

	t.Run("Duplicate pair", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.expectTransaction(ctx, false)
		f.ledger.EXPECT().AccountExists(ctx, "eosio.token").Return(true, nil).Once()
		existing := &entity.AllowedAsset{ID: 1, Issuer: "eosio.token", Symbol: tok}
		f.assetRepo.EXPECT().FindByPair(txCtx, "eosio.token", tok).Return(existing, nil).Once()

		_, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)

		assert.ErrorIs(t, err, errs.ErrDuplicateAsset)
		assert.True(t, errs.IsDuplicateError(err))
	})

	t.Run("Insert race hits the unique index", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.expectTransaction(ctx, false)
		f.ledger.EXPECT().AccountExists(ctx, "eosio.token").Return(true, nil).Once()
		f.assetRepo.EXPECT().FindByPair(txCtx, "eosio.token", tok).Return(nil, errs.ErrAssetNotFound).Once()
		f.assetRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDuplicateAsset).Once()

		_, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)

		assert.ErrorIs(t, err, errs.ErrDuplicateAsset)
	})
}

func TestRemoveAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin removes an entry", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.expectTransaction(ctx, true)
		f.assetRepo.EXPECT().Delete(txCtx, uint64(3)).Return(nil).Once()

		assert.NoError(t, f.useCase.RemoveAsset(ctx, "admin", 3))
	})

	t.Run("Unknown id", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.expectTransaction(ctx, false)
		f.assetRepo.EXPECT().Delete(txCtx, uint64(99)).Return(errs.ErrAssetNotFound).Once()

		err := f.useCase.RemoveAsset(ctx, "admin", 99)

		assert.ErrorIs(t, err, errs.ErrAssetNotFound)
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Non-admin caller", func(t *testing.T) {
		f := newFixture(t)

		err := f.useCase.RemoveAsset(ctx, "", 3)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestIsAllowed(t *testing.T) {
	ctx := context.Background()
	tok := entity.Symbol{Precision: 4, Code: "TOK"}

	t.Run("Allowlisted pair", func(t *testing.T) {
		f := newFixture(t)
		f.assetRepo.EXPECT().FindByPair(ctx, "eosio.token", tok).Return(&entity.AllowedAsset{ID: 1}, nil).Once()

		allowed, err := f.useCase.IsAllowed(ctx, "eosio.token", tok)

		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Unknown pair", func(t *testing.T) {
		f := newFixture(t)
		f.assetRepo.EXPECT().FindByPair(ctx, "eosio.token", tok).Return(nil, errs.ErrAssetNotFound).Once()

		allowed, err := f.useCase.IsAllowed(ctx, "eosio.token", tok)

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("Storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.assetRepo.EXPECT().FindByPair(ctx, "eosio.token", tok).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.IsAllowed(ctx, "eosio.token", tok)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	assets := []*entity.AllowedAsset{{ID: 1}, {ID: 2}}
	f.assetRepo.EXPECT().List(ctx).Return(assets, nil).Once()

	result, err := f.useCase.ListAssets(ctx)

	require.NoError(t, err)
	assert.Equal(t, assets, result)
}

func TestAllowlistUniquenessRoundTrip(t *testing.T) {
	ctx := context.Background()
	tok := entity.Symbol{Precision: 4, Code: "TOK"}
	f := newFixture(t)
	f.ledger.EXPECT().AccountExists(ctx, "eosio.token").Return(true, nil)

	// add, add again, remove, re-add
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(4)
	f.uow.EXPECT().Commit(txCtx).Return(nil).Times(3)
	f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	stored := map[uint64]*entity.AllowedAsset{}
	nextID := uint64(1)
	f.assetRepo.EXPECT().FindByPair(txCtx, "eosio.token", tok).RunAndReturn(
		func(_ context.Context, issuer string, symbol entity.Symbol) (*entity.AllowedAsset, error) {
			for _, a := range stored {
				if a.Matches(issuer, symbol) {
					return a, nil
				}
			}
			return nil, errs.ErrAssetNotFound
		})
	f.assetRepo.EXPECT().Create(txCtx, mock.Anything).RunAndReturn(
		func(_ context.Context, asset *entity.AllowedAsset) error {
			asset.ID = nextID
			nextID++
			stored[asset.ID] = asset
			return nil
		})
	f.assetRepo.EXPECT().Delete(txCtx, mock.Anything).RunAndReturn(
		func(_ context.Context, id uint64) error {
			delete(stored, id)
			return nil
		})

	first, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)
	require.NoError(t, err)

	_, err = f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)
	assert.ErrorIs(t, err, errs.ErrDuplicateEntry)

	require.NoError(t, f.useCase.RemoveAsset(ctx, "admin", first.ID))

	second, err := f.useCase.AddAsset(ctx, "admin", "eosio.token", tok)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
