package adapters

import (
	"bytes"
	"log"
	"os"
	"testing"
)

func TestNoOpLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	logger := NewNoOpLoggerAdapter()

	logger.Debug("message %s %d", "test", 123)
	logger.Info("message %s %d", "test", 123)
	logger.Warn("message", nil)
	logger.Error("message")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
