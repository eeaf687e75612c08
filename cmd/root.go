// Package cmd wires the portkit subcommands.
package cmd

import (
	"fmt"
	"os"

	"portkit/internal/tui"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portkit",
	Short: "Developer port utilities",
	Long: `portkit bundles three small development conveniences:

  reap-port      find and optionally kill the process occupying a TCP port
  serve          launch a static file server via npx http-server
  serve-builtin  launch the built-in static file server (no Node.js needed)

Both launchers probe the preferred port first and fall back to the next free
one, then open a browser tab pointed at the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Command failures print a readable message,
// never a stack trace.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err.Error()))
		os.Exit(1)
	}
}
