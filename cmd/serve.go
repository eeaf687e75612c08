package cmd

import (
	"fmt"
	"io"
	"os"

	"portkit/internal/config"
	"portkit/internal/logging"
	"portkit/internal/netprobe"
	"portkit/internal/server"
	"portkit/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the directory next to the executable via npx http-server",
	Long: `Requires Node.js. Probes the configured port (PORT env, default 8000),
falls back to the next free one, exports the chosen port to the child via
PORT, opens a browser tab, and runs npx http-server until interrupted.

Exits 1 when Node.js is missing or no free port is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer log.Sync()

		out := cmd.OutOrStdout()
		cfg := config.Load()
		reportVenv(out, cfg.Root)

		nodeVersion, ok := server.NodeVersion(cmd.Context())
		if !ok {
			fmt.Fprintln(out, tui.Error("ERROR: Node.js was not found in PATH."))
			fmt.Fprintln(out, "Install Node.js or use `portkit serve-builtin` instead.")
			os.Exit(1)
		}
		fmt.Fprintln(out, "Node.js "+nodeVersion)

		cfg, ok = resolvePort(out, cfg)
		if !ok {
			os.Exit(1)
		}

		fmt.Fprintln(out, tui.Banner("Local static server (npx http-server)", cfg.URL(), cfg.Root))
		server.OpenBrowserAfter(cfg.BrowserDelay, cfg.URL(), log)

		if err := server.RunNPX(cfg); err != nil {
			log.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Fprintln(out, "\nServer stopped.")
	},
}

// resolvePort keeps the preferred port when free and otherwise searches
// upward for an open one. Returns false when the whole range is occupied.
func resolvePort(out io.Writer, cfg config.Server) (config.Server, bool) {
	if netprobe.Free(cfg.Host, cfg.Port) {
		return cfg, true
	}

	fmt.Fprintln(out, tui.Warn(fmt.Sprintf("[!] Port %d is already in use, searching for a free one...", cfg.Port)))
	port, ok := netprobe.FindFree(cfg.Host, cfg.Port, config.MaxPortAttempts)
	if !ok {
		fmt.Fprintln(out, tui.Error(fmt.Sprintf("No free port found in %d..%d.", cfg.Port, cfg.Port+config.MaxPortAttempts-1)))
		fmt.Fprintln(out, "Free the port (see `portkit reap-port`) or set PORT to another range.")
		return cfg, false
	}

	fmt.Fprintln(out, tui.OK(fmt.Sprintf("[OK] Using free port %d", port)))
	cfg.Port = port
	return cfg, true
}

// reportVenv prints a notice when the served project carries a Python
// virtual environment.
func reportVenv(out io.Writer, root string) {
	if path, ok := server.VenvDir(root); ok {
		fmt.Fprintln(out, tui.Dim("virtual environment found: "+path))
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
