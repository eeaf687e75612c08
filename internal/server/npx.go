package server

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"portkit/internal/config"
)

// nodeCheckTimeout bounds the `node --version` probe.
const nodeCheckTimeout = 5 * time.Second

// NodeVersion reports the Node.js version string, or false when node is not
// on PATH or does not answer in time.
func NodeVersion(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, nodeCheckTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// RunNPX launches `npx http-server` on the configured port and blocks until
// it exits. The resolved port travels to the child both as a flag and via
// the PORT environment variable. An exit caused by the operator's interrupt
// is treated as clean.
func RunNPX(cfg config.Server) error {
	cmd := exec.Command("npx", "http-server", "-p", strconv.Itoa(cfg.Port), "-d", "false")
	cmd.Dir = cfg.Root
	cmd.Env = append(os.Environ(), "PORT="+strconv.Itoa(cfg.Port))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// The child shares our process group and receives Ctrl+C directly; we
	// only note the interrupt so the resulting non-zero exit is not
	// mistaken for a failure.
	var interrupted atomic.Bool
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		if _, ok := <-sig; ok {
			interrupted.Store(true)
		}
	}()

	err := cmd.Run()
	if err == nil || interrupted.Load() {
		return nil
	}
	return fmt.Errorf("npx http-server: %w", err)
}

// VenvDir returns the path of a Python virtual environment inside root, if
// one exists. Purely informational: projects served by these launchers often
// carry one, and the original tooling reported it.
func VenvDir(root string) (string, bool) {
	path := filepath.Join(root, "venv")
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return path, true
	}
	return "", false
}
