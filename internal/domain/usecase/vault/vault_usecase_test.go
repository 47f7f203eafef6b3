package vault

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	mcore "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	mext "github.com/amirhossein-jamali/safekeep/mocks/port/external"
	mpers "github.com/amirhossein-jamali/safekeep/mocks/port/persistence"
	"github.com/stretchr/testify/mock"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

const (
	vaultAccount = "safekeep"
	depositor    = "depositor"
	tokenIssuer  = "eosio.token"
	day          = 86400 * time.Second
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

type vaultFixture struct {
	uow              *mpers.MockUnitOfWork
	recordRepo       *mpers.MockRecordRepository
	configRepo       *mpers.MockConfigRepository
	notificationRepo *mpers.MockNotificationRepository
	ownerLockRepo    *mpers.MockOwnerLockRepository
	retrier          *mpers.MockRetrier
	ledger           *mext.MockLedger
	assetRepo        *mpers.MockAssetRepository
	identity         *mcore.MockIdentityProvider
	timeProvider     *mcore.MockTimeProvider
	logger           *mcore.MockLogger
	useCase          *VaultUseCase

	mu  sync.Mutex
	now time.Time
}

func newVaultFixture(t *testing.T) *vaultFixture {
	f := &vaultFixture{
		uow:              mpers.NewMockUnitOfWork(t),
		recordRepo:       mpers.NewMockRecordRepository(t),
		configRepo:       mpers.NewMockConfigRepository(t),
		notificationRepo: mpers.NewMockNotificationRepository(t),
		ownerLockRepo:    mpers.NewMockOwnerLockRepository(t),
		retrier:          mpers.NewMockRetrier(t),
		ledger:           mext.NewMockLedger(t),
		assetRepo:        mpers.NewMockAssetRepository(t),
		identity:         mcore.NewMockIdentityProvider(t),
		timeProvider:     mcore.NewMockTimeProvider(t),
		logger:           mcore.NewMockLogger(t),
	}

	f.uow.EXPECT().GetRecordRepository(mock.Anything).Return(f.recordRepo).Maybe()
	f.uow.EXPECT().GetConfigRepository(mock.Anything).Return(f.configRepo).Maybe()
	f.uow.EXPECT().GetAssetRepository(mock.Anything).Return(f.assetRepo).Maybe()
	f.uow.EXPECT().GetNotificationRepository(mock.Anything).Return(f.notificationRepo).Maybe()
	f.ownerLockRepo.EXPECT().AcquireLock(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.ownerLockRepo.EXPECT().ReleaseLock(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.retrier.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, op func() error) error {
		return op()
	}).Maybe()
	f.identity.EXPECT().VaultAccount().Return(vaultAccount).Maybe()
	f.timeProvider.EXPECT().Now().RunAndReturn(func() time.Time {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.now
	}).Maybe()
	f.timeProvider.EXPECT().WithTimeout(mock.Anything, mock.Anything).RunAndReturn(context.WithTimeout).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.useCase = NewVaultUseCase(
		f.uow, f.ownerLockRepo, f.retrier, f.ledger,
		f.identity, f.timeProvider, f.logger,
	)
	t.Cleanup(f.useCase.Shutdown)
	return f
}

func (f *vaultFixture) setNow(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// expectTransactions accepts any number of transactions that commit or roll back
func (f *vaultFixture) expectTransactions() {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return context.WithValue(ctx, txKey, "mockTransaction"), nil
	}).Maybe()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()
}

// memoryRecords backs the record repository mock with a map
type memoryRecords struct {
	mu      sync.Mutex
	records map[string]map[int64]entity.Record
}

func (f *vaultFixture) useMemoryRecords() *memoryRecords {
	store := &memoryRecords{records: map[string]map[int64]entity.Record{}}

	get := func(_ context.Context, owner string, start int64) (*entity.Record, error) {
		store.mu.Lock()
		defer store.mu.Unlock()
		r, ok := store.records[owner][start]
		if !ok {
			return nil, errs.ErrRecordNotFound
		}
		return &r, nil
	}
	f.recordRepo.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(get).Maybe()
	f.recordRepo.EXPECT().GetForUpdate(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(get).Maybe()
	f.recordRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, r *entity.Record) error {
		store.mu.Lock()
		defer store.mu.Unlock()
		owner, start := r.Key()
		if _, ok := store.records[owner][start]; ok {
			return errs.ErrDuplicateRecord
		}
		if store.records[owner] == nil {
			store.records[owner] = map[int64]entity.Record{}
		}
		store.records[owner][start] = *r
		return nil
	}).Maybe()
	f.recordRepo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, r *entity.Record) error {
		store.mu.Lock()
		defer store.mu.Unlock()
		owner, start := r.Key()
		store.records[owner][start] = *r
		return nil
	}).Maybe()
	f.recordRepo.EXPECT().Delete(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, owner string, start int64) error {
		store.mu.Lock()
		defer store.mu.Unlock()
		if _, ok := store.records[owner][start]; !ok {
			return errs.ErrRecordNotFound
		}
		delete(store.records[owner], start)
		return nil
	}).Maybe()
	f.recordRepo.EXPECT().ListByOwner(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, owner string) ([]*entity.Record, error) {
		store.mu.Lock()
		defer store.mu.Unlock()
		var out []*entity.Record
		for _, r := range store.records[owner] {
			r := r
			out = append(out, &r)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
		return out, nil
	}).Maybe()
	return store
}

func (s *memoryRecords) put(r *entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records[r.Owner] == nil {
		s.records[r.Owner] = map[int64]entity.Record{}
	}
	s.records[r.Owner][r.StartTime.Unix()] = *r
}

func (s *memoryRecords) count(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[owner])
}

// allowAsset makes the allowlist accept (or refuse) the test token inside the deposit transaction
func (f *vaultFixture) allowAsset(allowed bool) {
	tok := entity.Symbol{Precision: 4, Code: "TOK"}
	if !allowed {
		f.assetRepo.EXPECT().FindByPair(mock.Anything, tokenIssuer, tok).Return(nil, errs.ErrAssetNotFound)
		return
	}
	f.assetRepo.EXPECT().FindByPair(mock.Anything, tokenIssuer, tok).
		Return(&entity.AllowedAsset{ID: 1, Issuer: tokenIssuer, Symbol: tok}, nil)
}

func tokQuantity(amount int64) entity.Quantity {
	return entity.Quantity{Amount: amount, Symbol: entity.Symbol{Precision: 4, Code: "TOK"}}
}

func lockedRecord(start int64, cycle time.Duration, repeat bool) *entity.Record {
	return &entity.Record{
		Owner:         depositor,
		StartTime:     at(start),
		EndTime:       at(start).Add(cycle),
		CycleDuration: cycle,
		ConfigVersion: 1,
		Issuer:        tokenIssuer,
		Quantity:      tokQuantity(1000000),
		Repeat:        repeat,
	}
}
