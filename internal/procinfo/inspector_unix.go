//go:build !windows

package procinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// unixInspector shells out to lsof, ps and kill. Works on Linux and macOS.
type unixInspector struct {
	log *zap.Logger
	run runner
}

func newInspector(log *zap.Logger, run runner) Inspector {
	return &unixInspector{log: log, run: run}
}

func (in *unixInspector) PIDOnPort(ctx context.Context, port int) (int, bool) {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	// -t prints bare pids, -sTCP:LISTEN skips outbound connections that
	// happen to use the port as their local end.
	out, err := in.run(ctx, "lsof", "-t", "-i", ":"+strconv.Itoa(port), "-sTCP:LISTEN")
	if err != nil {
		// Exit code 1 just means no match.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return 0, false
		}
		if errors.Is(err, exec.ErrNotFound) {
			in.log.Warn("lsof not found, install it to look up processes by port")
		} else {
			in.log.Warn("lsof failed", zap.Error(err))
		}
		return 0, false
	}
	return parseFirstPID(string(out))
}

func (in *unixInspector) Info(ctx context.Context, pid int) (ProcessInfo, bool) {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	out, err := in.run(ctx, "ps", "-p", strconv.Itoa(pid), "-o", "comm=", "-o", "args=")
	if err != nil {
		in.log.Warn("ps failed", zap.Int("pid", pid), zap.Error(err))
		return ProcessInfo{}, false
	}
	return parsePSInfo(pid, string(out))
}

func (in *unixInspector) Kill(ctx context.Context, pid int) error {
	ctx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	if _, err := in.run(ctx, "kill", "-9", strconv.Itoa(pid)); err != nil {
		return fmt.Errorf("kill -9 %d: %w", pid, err)
	}
	return nil
}
