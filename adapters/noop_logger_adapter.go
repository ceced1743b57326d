package adapters

// NoOpLoggerAdapter discards every message. It is the default logger of the mappers.
type NoOpLoggerAdapter struct{}

var _ LoggerAdapter = (*NoOpLoggerAdapter)(nil)

// NewNoOpLoggerAdapter creates a new no-op logger
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(message string, args ...interface{}) {}
func (n *NoOpLoggerAdapter) Info(message string, args ...interface{})  {}
func (n *NoOpLoggerAdapter) Warn(message string, args ...interface{})  {}
func (n *NoOpLoggerAdapter) Error(message string, args ...interface{}) {}
