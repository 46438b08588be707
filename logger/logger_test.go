package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNoop(t *testing.T) {
	require.NotNil(t, L())
	assert.NotPanics(t, func() {
		Info("nothing to see")
		Warn("still nothing")
	})
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for name, want := range testCases {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestConfigForStage(t *testing.T) {
	prod := ConfigForStage(ProdStage, "")
	assert.True(t, prod.EnableJSON)
	assert.False(t, prod.EnableColor)
	assert.Equal(t, "info", prod.Level)

	dev := ConfigForStage("dev", "debug")
	assert.False(t, dev.EnableJSON)
	assert.True(t, dev.EnableColor)
}

func TestNewBuildsBothEncoders(t *testing.T) {
	for _, stage := range []string{ProdStage, "dev"} {
		log, err := New(ConfigForStage(stage, "warn"))
		require.NoError(t, err, stage)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel), stage)
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel), stage)
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	With(zap.String("component", "test")).Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "test", entry.ContextMap()["component"])
}
