package export

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/scenesync/internal/logger"
)

// setLogger routes the global logger to l for the duration of the test.
func setLogger(t *testing.T, l *zap.Logger) {
	t.Helper()
	logger.Set(l)
	t.Cleanup(func() { logger.Set(nil) })
}
