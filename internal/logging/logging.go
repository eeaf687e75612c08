// Package logging builds the zap logger shared by all portkit commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger suited to a CLI tool: colored capital levels,
// readable timestamps, no stacktraces.
func New() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		// Nothing sensible to do without a logger; a nop keeps the
		// commands functional.
		return zap.NewNop()
	}
	return log
}
