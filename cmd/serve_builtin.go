package cmd

import (
	"fmt"
	"os"

	"portkit/internal/config"
	"portkit/internal/logging"
	"portkit/internal/server"
	"portkit/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveBuiltinCmd = &cobra.Command{
	Use:   "serve-builtin",
	Short: "Serve the directory next to the executable with the built-in server",
	Long: `Same launch flow as serve but without the Node.js dependency: probes the
configured port, falls back to the next free one, opens a browser tab, and
serves files until interrupted. Every response carries fixed security
headers (nosniff, SAMEORIGIN, XSS filter).

Exits 1 when the listening socket cannot be bound.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer log.Sync()

		out := cmd.OutOrStdout()
		cfg := config.Load()
		reportVenv(out, cfg.Root)

		cfg, ok := resolvePort(out, cfg)
		if !ok {
			os.Exit(1)
		}

		fmt.Fprintln(out, tui.Banner("Local static server (built-in)", cfg.URL(), cfg.Root))
		server.OpenBrowserAfter(cfg.BrowserDelay, cfg.URL(), log)

		app := server.New(cfg, log)
		if err := server.Run(app, cfg, log); err != nil {
			log.Error("could not start the server", zap.Error(err))
			os.Exit(1)
		}
		fmt.Fprintln(out, "\nServer stopped.")
	},
}

func init() {
	rootCmd.AddCommand(serveBuiltinCmd)
}
