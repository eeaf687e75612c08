// Package reaper implements the probe, lookup, confirm, kill sequence behind
// the reap-port command. The flow takes its probe, inspector and confirmation
// as injected dependencies so the whole state machine is testable without
// touching real sockets or processes.
package reaper

import (
	"context"
	"fmt"
	"io"

	"portkit/internal/procinfo"
	"portkit/internal/tui"
)

// Outcome is the terminal state of one reaper run. Every outcome maps to
// exit code 0; the distinction exists for reporting and for tests.
type Outcome int

const (
	// PortFree means nothing was listening on the port.
	PortFree Outcome = iota
	// PIDNotFound means the port is occupied but no owning pid was found.
	PIDNotFound
	// InfoUnavailable means a pid was found but the process listing tool
	// produced nothing usable; no kill is attempted on an anonymous pid.
	InfoUnavailable
	// Aborted means the operator declined the confirmation.
	Aborted
	// Killed means the process was terminated.
	Killed
	// KillFailed means the termination command failed, typically due to
	// insufficient privileges.
	KillFailed
)

// Flow wires the reaper's dependencies.
type Flow struct {
	// Probe reports whether nothing listens on host:port.
	Probe func(host string, port int) bool

	// Inspector resolves ports to processes and terminates them.
	Inspector procinfo.Inspector

	// Confirm asks the operator whether to kill the described process.
	// Only a true return proceeds to termination.
	Confirm func(info procinfo.ProcessInfo) bool

	// Out receives operator-facing status lines.
	Out io.Writer
}

// Run drives the flow for a single port and returns its terminal state.
func (f Flow) Run(ctx context.Context, host string, port int) Outcome {
	if f.Probe(host, port) {
		fmt.Fprintln(f.Out, tui.OK(fmt.Sprintf("[OK] Port %d is free", port)))
		return PortFree
	}

	fmt.Fprintln(f.Out, tui.Warn(fmt.Sprintf("[!] Port %d is occupied, looking for the process...", port)))

	pid, ok := f.Inspector.PIDOnPort(ctx, port)
	if !ok {
		fmt.Fprintln(f.Out, tui.Warn(fmt.Sprintf("[!] Could not find the process on port %d", port)))
		return PIDNotFound
	}

	info, ok := f.Inspector.Info(ctx, pid)
	if !ok {
		fmt.Fprintln(f.Out, tui.Warn(fmt.Sprintf("Found a process with PID %d but could not get its details", pid)))
		return InfoUnavailable
	}

	fmt.Fprintln(f.Out, "Found process:")
	fmt.Fprintf(f.Out, "  %s  %d\n", tui.Label("PID:"), info.PID)
	fmt.Fprintf(f.Out, "  %s %s\n", tui.Label("Name:"), info.Name)
	fmt.Fprintf(f.Out, "  %s %s\n", tui.Label("Path:"), info.Path)

	if !f.Confirm(info) {
		fmt.Fprintln(f.Out, "Cancelled.")
		return Aborted
	}

	if err := f.Inspector.Kill(ctx, pid); err != nil {
		fmt.Fprintln(f.Out, tui.Error("[ERROR] Could not terminate the process (insufficient privileges?)"))
		return KillFailed
	}

	fmt.Fprintln(f.Out, tui.OK("[OK] Process terminated!"))
	return Killed
}
