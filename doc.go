// Package main implements portkit, a small set of developer conveniences
// around local TCP ports.
//
// portkit provides three commands:
//
//   - reap-port: probe a port, look up the owning process via the platform's
//     socket tools, and kill it after an interactive confirmation
//   - serve: launch npx http-server on the first free port at or above the
//     preferred one and open a browser tab
//   - serve-builtin: the same launch flow backed by the built-in fiber
//     static file server, no Node.js required
//
// # Architecture
//
// The codebase is organized into the following packages:
//
//   - cmd: cobra commands and the shared launch glue
//   - internal/netprobe: TCP occupancy probe and linear free-port search
//   - internal/procinfo: per-platform process inspector (lsof/ps/kill on
//     unix, netstat/tasklist/taskkill on windows) behind one interface
//   - internal/reaper: the probe, lookup, confirm, kill state machine
//   - internal/server: fiber static server, npx wrapper and browser task
//   - internal/config: environment-driven launcher configuration
//   - internal/tui: confirmation prompt, styles and the launch banner
//
// The procinfo.Inspector interface and the injected dependencies of
// reaper.Flow allow custom implementations and easier testing.
package main
