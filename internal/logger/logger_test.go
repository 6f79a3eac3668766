package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/atriumhq/atrium/internal/config"
)

func TestNewUsesConfiguredLevel(t *testing.T) {
	log, err := New(config.Config{AppName: "atrium", LogLevel: "debug"})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewDefaultsToInfo(t *testing.T) {
	log, err := New(config.Config{AppName: "atrium"})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.Config{LogLevel: "chatty"})
	assert.Error(t, err)
}
