package server

import (
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// OpenBrowserAfter schedules a one-shot background task that waits for the
// delay and then opens url in the default browser. The delay is a heuristic
// standing in for a readiness signal, not a guarantee that the server is
// accepting connections; for a convenience feature the race is acceptable.
// Failures are logged and otherwise ignored.
func OpenBrowserAfter(delay time.Duration, url string, log *zap.Logger) {
	go func() {
		time.Sleep(delay)
		if err := browser.OpenURL(url); err != nil {
			log.Debug("could not open browser", zap.String("url", url), zap.Error(err))
		}
	}()
}
