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

func TestChangeRepeat(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		repeat      bool
		now         int64
		newRepeat   bool
		expectedErr error
		expectedEnd int64
	}{
		{"Enable before end", false, 100, true, nil, 86400},
		{"Enable at end", false, 86400, true, nil, 86400},
		{"Enable after end", false, 86401, true, errs.ErrExpired, 86400},
		{"Disable before end", true, 100, false, nil, 86400},
		{"Disable after end", true, 200000, false, nil, 259200},
		{"Same value", true, 100, true, errs.ErrNoOp, 86400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newVaultFixture(t)
			f.expectTransactions()
			store := f.useMemoryRecords()
			store.put(lockedRecord(0, day, tc.repeat))
			f.setNow(at(tc.now))

			record, err := f.useCase.ChangeRepeat(ctx, depositor, depositor, 0, tc.newRepeat)

			stored, getErr := f.useCase.GetRecord(ctx, depositor, 0)
			require.NoError(t, getErr)
			assert.Equal(t, at(tc.expectedEnd), stored.EndTime)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, record)
				assert.Equal(t, tc.repeat, stored.Repeat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.newRepeat, record.Repeat)
			assert.Equal(t, tc.newRepeat, stored.Repeat)
		})
	}

	t.Run("Caller is not the owner", func(t *testing.T) {
		f := newVaultFixture(t)

		_, err := f.useCase.ChangeRepeat(ctx, "", depositor, 0, true)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unknown record", func(t *testing.T) {
		f := newVaultFixture(t)
		f.expectTransactions()
		f.useMemoryRecords()

		_, err := f.useCase.ChangeRepeat(ctx, depositor, depositor, 42, true)

		assert.ErrorIs(t, err, errs.ErrRecordNotFound)
	})
}

func TestRecordLifecycle(t *testing.T) {
	ctx := context.Background()

	newLifecycle := func(t *testing.T) (*vaultFixture, *memoryRecords) {
		f := newVaultFixture(t)
		f.expectTransactions()
		store := f.useMemoryRecords()
		f.allowAsset(true)
		f.configRepo.EXPECT().Get(mock.Anything).Return(&entity.CycleConfig{CycleDuration: day, Version: 1}, nil)
		f.ledger.EXPECT().Transfer(mock.Anything, mock.Anything).Return(nil).Maybe()
		return f, store
	}
	notification := func(memo string) usecase.TransferNotification {
		n := deposit(memo)
		n.TransferID = ""
		return n
	}

	t.Run("One-shot deposit withdrawn after maturity", func(t *testing.T) {
		f, store := newLifecycle(t)
		f.setNow(at(0))

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, notification("0"))
		require.NoError(t, err)
		assert.Equal(t, at(86400), result.Record.EndTime)
		assert.False(t, result.Record.Repeat)

		f.setNow(at(86401))
		_, err = f.useCase.Withdraw(ctx, depositor, depositor, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, store.count(depositor))
	})

	t.Run("Repeat deposit switched off then withdrawn", func(t *testing.T) {
		f, store := newLifecycle(t)
		f.setNow(at(0))

		result, err := f.useCase.HandleTransfer(ctx, tokenIssuer, notification("1"))
		require.NoError(t, err)
		assert.True(t, result.Record.Repeat)

		f.setNow(at(86401))
		_, err = f.useCase.Withdraw(ctx, depositor, depositor, 0)
		assert.ErrorIs(t, err, errs.ErrStillLocked)

		f.setNow(at(200000))
		record, err := f.useCase.ChangeRepeat(ctx, depositor, depositor, 0, false)
		require.NoError(t, err)
		assert.Equal(t, at(259200), record.EndTime)

		f.setNow(at(259201))
		_, err = f.useCase.Withdraw(ctx, depositor, depositor, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, store.count(depositor))
	})

	t.Run("Re-enabling repeat after maturity", func(t *testing.T) {
		f, store := newLifecycle(t)
		f.setNow(at(0))

		_, err := f.useCase.HandleTransfer(ctx, tokenIssuer, notification("0"))
		require.NoError(t, err)

		f.setNow(at(90000))
		_, err = f.useCase.ChangeRepeat(ctx, depositor, depositor, 0, true)
		assert.ErrorIs(t, err, errs.ErrExpired)
		assert.Equal(t, 1, store.count(depositor))
	})
}
