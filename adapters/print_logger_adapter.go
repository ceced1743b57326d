package adapters

import (
	"log"
)

// PrintLoggerAdapter implements LoggerAdapter using standard log package
type PrintLoggerAdapter struct {
	level LogLevel
}

// NewPrintLoggerAdapter creates a new print logger with the specified level
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{level: level}
}

func (p *PrintLoggerAdapter) shouldLog(level LogLevel) bool {
	return logLevelRank[level] >= logLevelRank[p.level]
}

func (p *PrintLoggerAdapter) Debug(message string, args ...interface{}) {
	if p.shouldLog(LogLevelDebug) {
		log.Printf("[DEBUG] [Amplitude] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Info(message string, args ...interface{}) {
	if p.shouldLog(LogLevelInfo) {
		log.Printf("[INFO] [Amplitude] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Warn(message string, args ...interface{}) {
	if p.shouldLog(LogLevelWarn) {
		log.Printf("[WARN] [Amplitude] "+message, args...)
	}
}

func (p *PrintLoggerAdapter) Error(message string, args ...interface{}) {
	if p.shouldLog(LogLevelError) {
		log.Printf("[ERROR] [Amplitude] "+message, args...)
	}
}
