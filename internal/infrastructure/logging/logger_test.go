package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestFromSettings(t *testing.T) {
	dev := FromSettings("", true)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	warn := FromSettings("warn", false)
	assert.False(t, warn.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, warn.Core().Enabled(zapcore.WarnLevel))

	nop := FromSettings("chatty", false)
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel))
}

func TestComponent(t *testing.T) {
	child := NewNop().Component("worksheet")
	require.NotNil(t, child)
	child.Info("discarded")
}
