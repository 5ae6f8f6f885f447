package app

import (
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <daemon>...",
	Short: "Start one or more daemons",
	Long: `Start the named daemons, or every registered daemon with the literal
name "all". Starting an already-running daemon is not an error. Each
daemon is detached from the terminal and its output is redirected to
its configured files; start reports success once the daemon program
has been launched, not whether it stays healthy afterwards.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	ctrl, reg, log, err := newController()
	if err != nil {
		return err
	}

	specs, err := reg.Select(args)
	if err != nil {
		return err
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
