package vault

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	"github.com/amirhossein-jamali/safekeep/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deposit(memo string) usecase.TransferNotification {
	return usecase.TransferNotification{
		TransferID: "trx-1",
		From:       depositor,
		To:         vaultAccount,
		Issuer:     tokenIssuer,
		Quantity:   "100.0000 TOK",
		Memo:       memo,
	}
}

func TestHandleTransfer(t *testing.T) {
	ctx := context.Background()
	tok := entity.Symbol{Precision: 4, Code: "TOK"}
	config := &entity.CycleConfig{CycleDuration: day, Version: 2}

	t.Run("One-shot deposit", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.allowAsset(true)
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		f.configRepo.EXPECT().Get(mock.Anything).Return(config, nil).Once()
		f.recordRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Record")).Return(nil).Once()
		f.notificationRepo.EXPECT().MarkProcessed(mock.Anything, mock.MatchedBy(func(n *entity.ProcessedNotification) bool {
			return n.TransferID == "trx-1" && n.Owner == depositor && n.StartTime.Equal(at(0))
		})).Return(nil).Once()

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit("0"))

		require.NoError(t, err)
		assert.True(t, result.Applicable)
		assert.False(t, result.Replayed)
		record := result.Record
		assert.Equal(t, depositor, record.Owner)
		assert.Equal(t, at(0), record.StartTime)
		assert.Equal(t, at(86400), record.EndTime)
		assert.Equal(t, day, record.CycleDuration)
		assert.Equal(t, uint64(2), record.ConfigVersion)
		assert.False(t, record.Repeat)
		assert.Equal(t, "100.0000 TOK", record.Quantity.String())
	})

	t.Run("Legacy repeat memo", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.allowAsset(true)
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		f.configRepo.EXPECT().Get(mock.Anything).Return(config, nil).Once()
		f.recordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.notificationRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(entity.RepeatMemo))

		require.NoError(t, err)
		assert.True(t, result.Record.Repeat)
		assert.Equal(t, entity.StateLockedRepeating, result.Record.State())
	})

	t.Run("Structured repeat flag overrides memo", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.allowAsset(true)
		f.configRepo.EXPECT().Get(mock.Anything).Return(config, nil).Once()
		f.recordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		no := false
		n := deposit(entity.RepeatMemo)
		n.TransferID = ""
		n.Repeat = &no

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)

		require.NoError(t, err)
		assert.False(t, result.Record.Repeat)
	})

	t.Run("Transfer to another account is ignored", func(t *testing.T) {
		f := newVaultFixture(t)
		n := deposit("")
		n.To = "someoneelse"

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)

		require.NoError(t, err)
		assert.False(t, result.Applicable)
		assert.Nil(t, result.Record)
	})

	t.Run("Unparseable quantity between other accounts is ignored", func(t *testing.T) {
		f := newVaultFixture(t)
		n := deposit("")
		n.To = "carol"
		n.Quantity = "1.0000 tok"

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)

		require.NoError(t, err)
		assert.False(t, result.Applicable)
	})

	t.Run("Caller is not the issuer", func(t *testing.T) {
		f := newVaultFixture(t)

		_, err := f.useCase.HandleTransfer(ctx, "fake.token", deposit(""))

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Malformed symbol", func(t *testing.T) {
		f := newVaultFixture(t)
		n := deposit("")
		n.Quantity = "100.0000 tok"

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)

		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
		var assetErr *errs.AssetError
		assert.ErrorAs(t, err, &assetErr)
	})

	t.Run("Non-positive quantity", func(t *testing.T) {
		f := newVaultFixture(t)
		n := deposit("")
		n.Quantity = "0.0000 TOK"

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)

		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		assert.True(t, errs.IsInvalidValueError(err))
	})

	t.Run("Asset not allowlisted", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		inTransaction := mock.MatchedBy(func(c context.Context) bool { return c.Value(txKey) != nil })
		f.assetRepo.EXPECT().FindByPair(inTransaction, tokenIssuer, tok).Return(nil, errs.ErrAssetNotFound).Once()

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(""))

		assert.ErrorIs(t, err, errs.ErrUnsupportedAsset)
		f.configRepo.AssertNotCalled(t, "Get", mock.Anything)
		f.recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Allowlist lookup failure rejects the transfer", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		f.assetRepo.EXPECT().FindByPair(mock.Anything, tokenIssuer, tok).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(""))

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Cycle not configured", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.allowAsset(true)
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		f.configRepo.EXPECT().Get(mock.Anything).Return(nil, errs.ErrCycleNotConfigured).Once()

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(""))

		assert.ErrorIs(t, err, errs.ErrCycleNotConfigured)
	})

	t.Run("Same second deposit collides", func(t *testing.T) {
		f := newVaultFixture(t)
		f.setNow(at(0))
		f.expectTransactions()
		f.allowAsset(true)
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(false, nil).Once()
		f.configRepo.EXPECT().Get(mock.Anything).Return(config, nil).Once()
		f.recordRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateRecord).Once()

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(""))

		assert.ErrorIs(t, err, errs.ErrDuplicateEntry)
		f.notificationRepo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	})

	t.Run("Replayed transfer returns the existing record", func(t *testing.T) {
		f := newVaultFixture(t)
		f.expectTransactions()
		existing := lockedRecord(0, day, false)
		f.notificationRepo.EXPECT().Exists(mock.Anything, "trx-1").Return(true, nil).Once()
		f.notificationRepo.EXPECT().Get(mock.Anything, "trx-1").Return(&entity.ProcessedNotification{
			TransferID: "trx-1", Owner: depositor, StartTime: at(0),
		}, nil).Once()
		f.recordRepo.EXPECT().Get(mock.Anything, depositor, int64(0)).Return(existing, nil).Once()

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, deposit(""))

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, existing, result.Record)
		f.recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHandleTransferConfigChangeDoesNotTouchRecords(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.expectTransactions()
	store := f.useMemoryRecords()
	f.allowAsset(true)

	config := &entity.CycleConfig{CycleDuration: day, Version: 1}
	f.configRepo.EXPECT().Get(mock.Anything).RunAndReturn(func(context.Context) (*entity.CycleConfig, error) {
		copied := *config
		return &copied, nil
	})

	n := deposit("")
	n.TransferID = ""

	f.setNow(at(0))
	_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, n)
	require.NoError(t, err)

	config.CycleDuration = 2 * day
	config.Version = 2

	f.setNow(at(10))
	_, err = f.useCase.HandleTransfer(ctx, tokenIssuer, n)
	require.NoError(t, err)

	records, err := f.useCase.ListRecords(ctx, depositor)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, store.count(depositor))

	assert.Equal(t, at(86400), records[0].EndTime)
	assert.Equal(t, day, records[0].CycleDuration)
	assert.Equal(t, at(10).Add(2*day), records[1].EndTime)
	assert.Equal(t, uint64(2), records[1].ConfigVersion)
}
