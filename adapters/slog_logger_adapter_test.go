package adapters

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLoggerAdapter(t *testing.T) {
	t.Run("should format messages and tag the component", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewTextSlogLoggerAdapter(LogLevelDebug, &buf)

		logger.Debug("mapped %d events", 3)

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, `msg="mapped 3 events"`)
		assert.Contains(t, out, "component=amplitude")
	})

	t.Run("should respect log levels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewTextSlogLoggerAdapter(LogLevelWarn, &buf)

		logger.Debug("debug message")
		logger.Info("info message")
		assert.Empty(t, buf.String())

		logger.Warn("warn message")
		logger.Error("error message")
		assert.Contains(t, buf.String(), "warn message")
		assert.Contains(t, buf.String(), "error message")
	})

	t.Run("should handle none level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewTextSlogLoggerAdapter(LogLevelNone, &buf)

		logger.Error("error message")
		assert.Empty(t, buf.String())
	})

	t.Run("should wrap the default logger when nil", func(t *testing.T) {
		assert.NotNil(t, NewSlogLoggerAdapter(nil).logger)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{" INFO ", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"none", LogLevelNone},
		{"off", LogLevelNone},
		{"", LogLevelWarn},
		{"verbose", LogLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}
