package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ashishkumar1990/laywer-client/internal/logging"
)

func TestZapLogger_Levels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.Wrap(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "/users"})
	logger.Info("Logged in", nil)
	logger.Warn("Response interceptor failed", map[string]interface{}{"error": "closed"})
	logger.Error("API Response Error", map[string]interface{}{"status_code": 500})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"method": "GET", "url": "/users"}, entries[0].ContextMap())

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Empty(t, entries[1].Context)

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, int64(500), entries[3].ContextMap()["status_code"])
}

func TestZapLogger_FieldOrder(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.Wrap(zap.New(core))

	logger.Info("ordered", map[string]interface{}{"b": 2, "a": 1, "c": 3})

	context := logs.All()[0].Context
	require.Len(t, context, 3)
	assert.Equal(t, "a", context[0].Key)
	assert.Equal(t, "b", context[1].Key)
	assert.Equal(t, "c", context[2].Key)
}

func TestNewZap(t *testing.T) {
	t.Parallel()

	verbose, err := logging.NewZap(true)
	require.NoError(t, err)
	assert.True(t, verbose.Zap().Core().Enabled(zapcore.DebugLevel))

	quiet, err := logging.NewZap(false)
	require.NoError(t, err)
	assert.False(t, quiet.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Zap().Core().Enabled(zapcore.WarnLevel))

	nop := logging.Nop()
	nop.Error("dropped", map[string]interface{}{"x": 1})
}
