//go:build windows

package procinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// windowsInspector shells out to netstat, tasklist and taskkill.
type windowsInspector struct {
	log *zap.Logger
	run runner
}

func newInspector(log *zap.Logger, run runner) Inspector {
	return &windowsInspector{log: log, run: run}
}

func (in *windowsInspector) PIDOnPort(ctx context.Context, port int) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	out, err := in.run(ctx, "netstat", "-ano")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			in.log.Warn("netstat not found, cannot look up processes by port")
		} else {
			in.log.Warn("netstat failed", zap.Error(err))
		}
		return 0, false
	}
	return parseNetstatPID(string(out), port)
}

func (in *windowsInspector) Info(ctx context.Context, pid int) (ProcessInfo, bool) {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	out, err := in.run(ctx, "tasklist", "/FI", fmt.Sprintf("PID eq %d", pid), "/FO", "CSV", "/NH")
	if err != nil {
		in.log.Warn("tasklist failed", zap.Int("pid", pid), zap.Error(err))
		return ProcessInfo{}, false
	}
	return parseTasklistInfo(pid, string(out))
}

func (in *windowsInspector) Kill(ctx context.Context, pid int) error {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	if _, err := in.run(ctx, "taskkill", "/F", "/PID", strconv.Itoa(pid)); err != nil {
		return fmt.Errorf("taskkill /F /PID %d: %w", pid, err)
	}
	return nil
}
