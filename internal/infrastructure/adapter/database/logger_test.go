package database

import (
	"context"
	"errors"
	"testing"
	"time"

	applogger "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/safekeep/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/logger"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(`  select * from "records"`))
	assert.Equal(t, "INSERT", extractQueryType(`INSERT INTO owner_locks VALUES (1)`))
	assert.Equal(t, "", extractQueryType(`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "records", extractTableName(`SELECT * FROM "records" WHERE owner = 'alice'`))
	assert.Equal(t, "owner_locks", extractTableName(`INSERT INTO owner_locks (owner) VALUES ('a')`))
	assert.Equal(t, "cycle_configs", extractTableName(`UPDATE cycle_configs SET version = 2`))
	assert.Equal(t, "", extractTableName(`BEGIN`))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := applogger.ContextWithRequestID(context.Background(), "req-7")
	query := func() (string, int64) { return `SELECT * FROM "records"`, 1 }

	t.Run("Error is logged with request id", func(t *testing.T) {
		coreLogger := mcore.NewMockLogger(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(time.Millisecond)
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-7" && fields["table"] == "records"
		})).Once()

		NewDatabaseLogger(coreLogger, timeProvider, "info").Trace(ctx, begin, query, errors.New("syntax error"))
	})

	t.Run("Slow query warns", func(t *testing.T) {
		coreLogger := mcore.NewMockLogger(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(time.Second)
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		NewDatabaseLogger(coreLogger, timeProvider, "warn").Trace(ctx, begin, query, nil)
	})

	t.Run("Not found is routine", func(t *testing.T) {
		coreLogger := mcore.NewMockLogger(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(begin).Return(time.Millisecond)
		coreLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		NewDatabaseLogger(coreLogger, timeProvider, "info").Trace(ctx, begin, query, errors.New("record not found"))
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		coreLogger := mcore.NewMockLogger(t)
		timeProvider := mcore.NewMockTimeProvider(t)

		NewDatabaseLogger(coreLogger, timeProvider, "info").LogMode(logger.Silent).
			Trace(ctx, begin, query, errors.New("syntax error"))
	})
}
