// Package procinfo answers "which process owns this TCP port" by shelling
// out to the platform's socket and process listing tools. Everything here is
// best-effort: a missing tool or unparseable output is reported through the
// logger and collapses to "not found", never to a failure the caller has to
// handle.
package procinfo

import (
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// ToolTimeout bounds every external tool invocation so a wedged lsof or
// netstat cannot hang the caller.
const ToolTimeout = 10 * time.Second

// ProcessInfo describes a process for the duration of a single invocation.
// Name and Path are best-effort and may be empty when the listing tool
// returns partial output.
type ProcessInfo struct {
	PID  int
	Name string
	Path string
}

// Inspector looks up and terminates processes by port or pid. One
// implementation exists per platform, selected at build time.
type Inspector interface {
	// PIDOnPort returns the pid of the process listening on port, if any.
	PIDOnPort(ctx context.Context, port int) (int, bool)

	// Info returns metadata for pid. The boolean is false when the process
	// listing tool produced nothing usable.
	Info(ctx context.Context, pid int) (ProcessInfo, bool)

	// Kill forcefully terminates pid. A non-zero tool exit (no such
	// process, insufficient privilege) comes back as an error.
	Kill(ctx context.Context, pid int) error
}

// runner executes an external tool and returns its stdout. Tests swap this
// out to feed canned output through the inspectors.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// New returns the inspector for the current platform.
func New(log *zap.Logger) Inspector {
	return newInspector(log, runCommand)
}
