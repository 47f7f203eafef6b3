package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	mcore "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	open, inUse, idle int
	waitCount         int64
	calls             int
}

func (s *recordingSink) SetDBPool(open, inUse, idle int, waitCount int64) {
	s.open, s.inUse, s.idle, s.waitCount = open, inUse, idle, waitCount
	s.calls++
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Publishes stats and warns near exhaustion", func(t *testing.T) {
		logger := mcore.NewMockLogger(t)
		logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()
		sink := &recordingSink{}
		stats := func() (sql.DBStats, error) {
			return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 9, Idle: 1, WaitCount: 4}, nil
		}

		monitor := NewConnectionPoolMonitor(stats, sink, logger)
		require.NoError(t, monitor.Start(time.Hour))
		defer monitor.Stop()

		assert.Equal(t, 1, sink.calls)
		assert.Equal(t, 9, sink.inUse)
		assert.Equal(t, int64(4), sink.waitCount)
		assert.Equal(t, 9, monitor.GetMetrics().InUse)
	})

	t.Run("Healthy pool is quiet", func(t *testing.T) {
		logger := mcore.NewMockLogger(t)
		stats := func() (sql.DBStats, error) {
			return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 2, InUse: 1, Idle: 1}, nil
		}

		monitor := NewConnectionPoolMonitor(stats, nil, logger)
		require.NoError(t, monitor.Start(time.Hour))
		monitor.Stop()
		monitor.Stop()
	})

	t.Run("Start fails when stats are unavailable", func(t *testing.T) {
		logger := mcore.NewMockLogger(t)
		stats := func() (sql.DBStats, error) { return sql.DBStats{}, errors.New("sql: database is closed") }

		monitor := NewConnectionPoolMonitor(stats, nil, logger)
		assert.Error(t, monitor.Start(time.Hour))
		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})
}
