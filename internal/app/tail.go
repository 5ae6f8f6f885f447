package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nocrux/nocrux/internal/daemon"
)

var tailStderr bool

var tailCmd = &cobra.Command{
	Use:   "tail <daemon>",
	Short: "Follow a daemon's output file",
	Long: `Print the tail of the daemon's stdout file and follow appended
output until interrupted. With --stderr the stderr file is followed
instead; that requires the daemon to have a separate stderr file
configured. Exactly one daemon must be named; "all" is not accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runTail,
}

func init() {
	tailCmd.Flags().BoolVarP(&tailStderr, "stderr", "e", false, "Follow the stderr file instead of stdout")
	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	if args[0] == "all" {
		return fmt.Errorf("can only tail a single daemon")
	}

	_, reg, _, err := newController()
	if err != nil {
		return err
	}

	spec, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	path := spec.Stdout
	if tailStderr {
		if spec.Stderr == "" {
			return fmt.Errorf("daemon %q has no separate stderr file", spec.Name)
		}
		path = spec.Stderr
	}

	// Interrupting the tail is the normal way to leave it.
	ctx, cancel := signalContext()
	defer cancel()

	return daemon.Tail(ctx, path, os.Stdout)
}
