package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/connect/pkg/connect"
)

func TestZapLogger_Fields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := connect.NewZapLogger(zap.New(core))

	logger.Debug("requesting token", map[string]interface{}{"grant": "password"})
	logger.Info("token acquired", nil)
	logger.Warn("cache store failed", map[string]interface{}{"error": "down"})
	logger.Error("token request failed", map[string]interface{}{"status": 401})

	require.Equal(t, 4, logs.Len())

	entries := logs.All()
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "password", entries[0].ContextMap()["grant"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.EqualValues(t, 401, entries[3].ContextMap()["status"])
}

func TestZapLogger_LevelFilter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	logger := connect.NewZapLogger(zap.New(core))

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	assert.Equal(t, 1, logs.FilterMessage("shown").Len())
	assert.Equal(t, 0, logs.FilterMessage("hidden").Len())
}

func TestNewZapLogger_NilIsNop(t *testing.T) {
	t.Parallel()

	logger := connect.NewZapLogger(nil)
	assert.NotNil(t, logger.Zap())
	assert.NotPanics(t, func() { logger.Info("discarded", nil) })
}

func TestBuiltLoggers(t *testing.T) {
	t.Parallel()

	dev, err := connect.NewDevelopmentLogger("debug")
	require.NoError(t, err)
	assert.True(t, dev.Zap().Core().Enabled(zapcore.DebugLevel))

	prod, err := connect.NewProductionLogger("warn")
	require.NoError(t, err)
	assert.False(t, prod.Zap().Core().Enabled(zapcore.InfoLevel))

	fallback, err := connect.NewProductionLogger("not-a-level")
	require.NoError(t, err)
	assert.True(t, fallback.Zap().Core().Enabled(zapcore.InfoLevel))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var logger connect.Logger = connect.NopLogger{}

	assert.NotPanics(t, func() {
		logger.Debug("x", nil)
		logger.Error("x", map[string]interface{}{"k": "v"})
	})
}
