package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestInit(t *testing.T) {
	defer Set(nil)

	l, err := Init("debug", "json")
	require.NoError(t, err)
	assert.Same(t, l, L())

	_, err = Init("info", "xml")
	assert.Error(t, err)
}

func TestSetCapturesHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(nil)

	Debug("d")
	Warn("w", zap.String("k", "v"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "w", logs.All()[1].Message)
	assert.Equal(t, "v", logs.All()[1].ContextMap()["k"])
}
