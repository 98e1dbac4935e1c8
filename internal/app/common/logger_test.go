package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		level       string
		enabled     zapcore.Level
		disabled    zapcore.Level
	}{
		{"development default", true, "", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"production default", false, "", zapcore.InfoLevel, zapcore.DebugLevel},
		{"production warn", false, "warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"development error", true, "error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.development, tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(false, "loud")
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewLogger(false, "loud") })
}
