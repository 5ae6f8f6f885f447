package app

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop <daemon>...",
	Short: "Stop one or more daemons",
	Long: `Stop the named daemons, or every registered daemon with the literal
name "all". Each daemon is sent SIGTERM; one still alive after the
configured kill timeout is SIGKILLed. Stopping a daemon that is not
running is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	ctrl, reg, _, err := newController()
	if err != nil {
		return err
	}

	specs, err := reg.Select(args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	for _, spec := range specs {
		if err := ctrl.Stop(ctx, spec); err != nil {
			// Only context cancellation reaches here; the remaining
			// daemons are left as they are.
			return err
		}
	}
	return nil
}
