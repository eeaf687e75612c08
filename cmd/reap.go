package cmd

import (
	"fmt"
	"strconv"

	"portkit/internal/config"
	"portkit/internal/logging"
	"portkit/internal/netprobe"
	"portkit/internal/procinfo"
	"portkit/internal/reaper"
	"portkit/internal/tui"

	"github.com/spf13/cobra"
)

var reapCmd = &cobra.Command{
	Use:   "reap-port [port]",
	Short: "Find and optionally kill the process occupying a TCP port",
	Long: `Probes the port (default 8000). When something is listening, looks up the
owning process, shows its pid, name and invocation path, and asks for
confirmation before killing it. Every outcome is a status report; the
command always exits 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port := config.DefaultPort
		if len(args) == 1 {
			p, err := strconv.Atoi(args[0])
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("invalid port %q: expected a number between 1 and 65535", args[0])
			}
			port = p
		}

		log := logging.New()
		defer log.Sync()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tui.Label(fmt.Sprintf("Looking for a process on port %d", port)))

		flow := reaper.Flow{
			Probe:     netprobe.Free,
			Inspector: procinfo.New(log),
			Confirm: func(info procinfo.ProcessInfo) bool {
				return tui.Confirm(fmt.Sprintf("Terminate process %d (%s)?", info.PID, info.Name))
			},
			Out: out,
		}
		flow.Run(cmd.Context(), config.DefaultHost, port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reapCmd)
}
