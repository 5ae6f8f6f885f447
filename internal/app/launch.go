package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nocrux/nocrux/internal/daemon"
)

// launchCmd is the detached flow of the start protocol. The start
// command re-executes the nocrux binary into this hidden command in a
// new session; it finishes the daemon's setup and replaces its own
// process image with the target program. It is not meant to be invoked
// by operators.
var launchCmd = &cobra.Command{
	Use:    daemon.LaunchCommand + " <daemon>",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE:   runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	err := launchDaemon(args[0])

	// Reached only when setup failed: a successful launch replaces
	// this process image and never returns. Report through the
	// handshake pipe and exit with the reserved setup-failure status.
	daemon.ReportLaunchFailure(err)
	os.Exit(daemon.LaunchFailureExit)
	return nil
}

func launchDaemon(name string) error {
	ctrl, reg, _, err := newController()
	if err != nil {
		return err
	}

	spec, err := reg.Get(name)
	if err != nil {
		return err
	}

	return ctrl.Launch(spec)
}
