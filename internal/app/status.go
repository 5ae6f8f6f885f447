package app

import (
	"github.com/spf13/cobra"

	"github.com/nocrux/nocrux/internal/daemon"
	"github.com/nocrux/nocrux/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status <daemon>...",
	Short: "Show the status of one or more daemons",
	Long: `Derive and print the state of the named daemons, or of every
registered daemon with the literal name "all". The state is computed
from the PID file and the OS process table on every call; nothing is
cached between invocations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctrl, reg, log, err := newController()
	if err != nil {
		return err
	}

	specs, err := reg.Select(args)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		if ctrl.Status(spec) != daemon.Started {
			log.Daemonf(spec.Name, "%s", output.StyleStopped.Render("stopped"))
			continue
		}

		// The PID file carries no start-time fingerprint, so show what
		// is actually running behind the recorded pid; a reused pid is
		// visible as an unexpected command line.
		pid := daemon.ReadPIDFile(spec.PIDFile)
		state := output.StyleStarted.Render("started")
		switch d, err := daemon.ProcessDetail(pid); {
		case err == nil && d.Cmdline != "":
			log.Daemonf(spec.Name, "%s (PID: %d, up %s) %s", state, pid, d.Uptime, output.StyleDetail.Render(d.Cmdline))
		case err == nil && d.Uptime > 0:
			log.Daemonf(spec.Name, "%s (PID: %d, up %s)", state, pid, d.Uptime)
		default:
			log.Daemonf(spec.Name, "%s (PID: %d)", state, pid)
		}
	}
	return nil
}
