package app

import (
	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart <daemon>...",
	Short: "Restart one or more daemons",
	Long: `Stop and then start the named daemons, or every registered daemon with
the literal name "all". Stops are best-effort; the restart fails only
if a subsequent start fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	ctrl, reg, log, err := newController()
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
			return err
		}
	}

	failed := false
	for _, spec := range specs {
		if err := ctrl.Start(spec); err != nil {
			log.Errorf(spec.Name, "%v", err)
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
