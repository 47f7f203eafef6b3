package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 86400 * time.Second

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func mustQuantity(t *testing.T, text string) Quantity {
	t.Helper()
	q, err := ParseQuantity(text)
	require.NoError(t, err)
	return q
}

func newTestRecord(t *testing.T, start int64, cycle time.Duration, repeat bool) *Record {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(at(start)).Maybe()

	config := &CycleConfig{CycleDuration: cycle, Version: 1}
	record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "100.0000 TOK"), config, repeat, mockTime)
	require.NoError(t, err)
	return record
}

func TestNewRecord(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 750_000_000, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	config := &CycleConfig{CycleDuration: day, Version: 3}

	t.Run("Valid deposit", func(t *testing.T) {
		record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "100.0000 TOK"), config, false, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "depositor", record.Owner)
		assert.Equal(t, fixedTime.Truncate(time.Second), record.StartTime)
		assert.Equal(t, record.StartTime.Add(day), record.EndTime)
		assert.Equal(t, day, record.CycleDuration)
		assert.Equal(t, uint64(3), record.ConfigVersion)
		assert.Equal(t, "100.0000 TOK", record.Quantity.String())
		assert.False(t, record.Repeat)
		assert.Equal(t, StateLockedOneShot, record.State())
	})

	t.Run("Repeat deposit", func(t *testing.T) {
		record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "1.0000 TOK"), config, true, mockTime)

		require.NoError(t, err)
		assert.True(t, record.Repeat)
		assert.Equal(t, StateLockedRepeating, record.State())
	})

	t.Run("Later config changes do not touch the record", func(t *testing.T) {
		cfg := &CycleConfig{CycleDuration: day, Version: 1}
		record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "1.0000 TOK"), cfg, false, mockTime)
		require.NoError(t, err)
		end := record.EndTime

		cfg.CycleDuration = 2 * day
		cfg.Version = 2

		assert.Equal(t, day, record.CycleDuration)
		assert.Equal(t, end, record.EndTime)
		assert.Equal(t, uint64(1), record.ConfigVersion)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "0.0000 TOK"), config, false, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		assert.ErrorIs(t, err, errs.ErrInvalidValue)
		assert.Nil(t, record)
	})

	t.Run("Invalid owner", func(t *testing.T) {
		record, err := NewRecord("Bad.Owner", "eosio.token", mustQuantity(t, "1.0000 TOK"), config, false, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
		assert.Nil(t, record)
	})

	t.Run("Invalid symbol", func(t *testing.T) {
		q := Quantity{Amount: 10, Symbol: Symbol{Precision: 4, Code: "tok"}}
		record, err := NewRecord("depositor", "eosio.token", q, config, false, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
		assert.Nil(t, record)
	})

	t.Run("Cycle not configured", func(t *testing.T) {
		record, err := NewRecord("depositor", "eosio.token", mustQuantity(t, "1.0000 TOK"), nil, false, mockTime)

		assert.ErrorIs(t, err, errs.ErrCycleNotConfigured)
		assert.Nil(t, record)
	})
}

func TestRecordCheckWithdrawable(t *testing.T) {
	testCases := []struct {
		name        string
		repeat      bool
		now         time.Time
		expectedErr error
	}{
		{"Before end", false, at(100), errs.ErrNotMature},
		{"Exactly at end", false, at(86400), errs.ErrNotMature},
		{"Sub-second past end", false, at(86400).Add(999 * time.Millisecond), errs.ErrNotMature},
		{"One second past end", false, at(86401), nil},
		{"Repeating before end", true, at(100), errs.ErrStillLocked},
		{"Repeating after end", true, at(86401), errs.ErrStillLocked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := newTestRecord(t, 0, day, tc.repeat)
			err := record.CheckWithdrawable(tc.now)

			if tc.expectedErr == nil {
				assert.NoError(t, err)
				assert.True(t, record.IsMature(tc.now))
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
			assert.Equal(t, at(86400), record.EndTime)
		})
	}
}

func TestRecordChangeRepeat(t *testing.T) {
	t.Run("Same value is a no-op", func(t *testing.T) {
		record := newTestRecord(t, 0, day, true)

		err := record.ChangeRepeat(true, at(10))

		assert.ErrorIs(t, err, errs.ErrNoOp)
		assert.True(t, record.Repeat)
	})

	t.Run("Enable before end", func(t *testing.T) {
		record := newTestRecord(t, 0, day, false)

		require.NoError(t, record.ChangeRepeat(true, at(500)))

		assert.True(t, record.Repeat)
		assert.Equal(t, at(86400), record.EndTime)
	})

	t.Run("Enable exactly at end", func(t *testing.T) {
		record := newTestRecord(t, 0, day, false)

		require.NoError(t, record.ChangeRepeat(true, at(86400)))
		assert.True(t, record.Repeat)
	})

	t.Run("Enable after end is expired", func(t *testing.T) {
		record := newTestRecord(t, 0, day, false)

		err := record.ChangeRepeat(true, at(86401))

		assert.ErrorIs(t, err, errs.ErrExpired)
		assert.False(t, record.Repeat)
		assert.Equal(t, at(86400), record.EndTime)
	})

	t.Run("Disable before end keeps end time", func(t *testing.T) {
		record := newTestRecord(t, 0, day, true)

		require.NoError(t, record.ChangeRepeat(false, at(100)))

		assert.False(t, record.Repeat)
		assert.Equal(t, at(86400), record.EndTime)
	})

	t.Run("Disable after end moves to next boundary", func(t *testing.T) {
		record := newTestRecord(t, 0, day, true)

		require.NoError(t, record.ChangeRepeat(false, at(200000)))

		assert.False(t, record.Repeat)
		assert.Equal(t, at(259200), record.EndTime)
	})

	t.Run("Disable on an exact boundary", func(t *testing.T) {
		record := newTestRecord(t, 0, day, true)

		require.NoError(t, record.ChangeRepeat(false, at(3*86400)))
		assert.Equal(t, at(3*86400), record.EndTime)
	})

	t.Run("Toggle on then off without time passing", func(t *testing.T) {
		record := newTestRecord(t, 0, day, false)
		now := at(4000)

		require.NoError(t, record.ChangeRepeat(true, now))
		require.NoError(t, record.ChangeRepeat(false, now))

		assert.Equal(t, at(86400), record.EndTime)
		assert.False(t, record.Repeat)
	})
}

func TestNextBoundary(t *testing.T) {
	cycles := []time.Duration{time.Second, 7 * time.Second, time.Hour, day}
	nows := []int64{0, 1, 86399, 86400, 86401, 200000, 1_000_003}

	for _, cycle := range cycles {
		for _, n := range nows {
			end := at(0).Add(cycle)
			now := at(n)

			got := NextBoundary(end, cycle, now)

			// reference: advance one cycle at a time
			want := end
			for want.Before(now) {
				want = want.Add(cycle)
			}
			assert.Equal(t, want, got, "cycle=%s now=%d", cycle, n)
			assert.False(t, got.Before(now))
			assert.Zero(t, got.Sub(end)%cycle)
		}
	}
}

func TestRecordLifecycleScenarios(t *testing.T) {
	t.Run("One-shot deposit matures and withdraws", func(t *testing.T) {
		record := newTestRecord(t, 0, day, false)

		assert.Equal(t, at(0), record.StartTime)
		assert.Equal(t, at(86400), record.EndTime)
		assert.NoError(t, record.CheckWithdrawable(at(86401)))
	})

	t.Run("Repeat deposit must be switched off first", func(t *testing.T) {
		record := newTestRecord(t, 0, day, true)

		assert.ErrorIs(t, record.CheckWithdrawable(at(86401)), errs.ErrStillLocked)

		require.NoError(t, record.ChangeRepeat(false, at(200000)))
		assert.Equal(t, at(259200), record.EndTime)

		assert.ErrorIs(t, record.CheckWithdrawable(at(259200)), errs.ErrNotMature)
		assert.NoError(t, record.CheckWithdrawable(at(259201)))
	})
}

func TestRecordKey(t *testing.T) {
	record := newTestRecord(t, 1_700_000_000, day, false)

	owner, start := record.Key()

	assert.Equal(t, "depositor", owner)
	assert.Equal(t, int64(1_700_000_000), start)
}
