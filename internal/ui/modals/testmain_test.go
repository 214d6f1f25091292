package modals

import (
	"os"
	"testing"

	"github.com/termdeck/termdeck/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/termdeck-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	// Initialize modal constants for tests
	ModalWidth = 80
	ModalInputWidth = 50
	ModalInputCharLimit = 256

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
