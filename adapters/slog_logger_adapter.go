package adapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SlogLoggerAdapter implements LoggerAdapter on top of a *slog.Logger.
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

var _ LoggerAdapter = (*SlogLoggerAdapter)(nil)

// NewSlogLoggerAdapter wraps logger. A nil logger uses slog.Default().
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLoggerAdapter{logger: logger.With("component", "amplitude")}
}

// NewTextSlogLoggerAdapter writes text records at level to out (stderr when nil).
func NewTextSlogLoggerAdapter(level LogLevel, out io.Writer) *SlogLoggerAdapter {
	if out == nil {
		out = os.Stderr
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(level)})
	return NewSlogLoggerAdapter(slog.New(handler))
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	case LogLevelNone:
		return slog.LevelError + 4
	default:
		return slog.LevelWarn
	}
}

func (s *SlogLoggerAdapter) log(level slog.Level, message string, args ...interface{}) {
	if !s.logger.Enabled(context.Background(), level) {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	s.logger.Log(context.Background(), level, message)
}

func (s *SlogLoggerAdapter) Debug(message string, args ...interface{}) {
	s.log(slog.LevelDebug, message, args...)
}

func (s *SlogLoggerAdapter) Info(message string, args ...interface{}) {
	s.log(slog.LevelInfo, message, args...)
}

func (s *SlogLoggerAdapter) Warn(message string, args ...interface{}) {
	s.log(slog.LevelWarn, message, args...)
}

func (s *SlogLoggerAdapter) Error(message string, args ...interface{}) {
	s.log(slog.LevelError, message, args...)
}
