package logger

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestZapLoggerSetLevel(t *testing.T) {
	l := NewZapLogger(true)

	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	assert.False(t, l.logger.Core().Enabled(zapcore.DebugLevel))

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.True(t, l.logger.Core().Enabled(zapcore.DebugLevel))

	l.SetLevel(core.LogLevelError)
	assert.False(t, l.logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, l.logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewZapLoggerWithLevel(t *testing.T) {
	l := NewZapLoggerWithLevel(false, "warn")
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}

func TestMapToZapFields(t *testing.T) {
	fields := mapToZapFields(map[string]any{"owner": "alice", "start_time": int64(1)})
	assert.Len(t, fields, 2)
	assert.Empty(t, mapToZapFields(nil))
}

func TestRequestIDContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	l.Info("ignored", map[string]any{"k": "v"})
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}
