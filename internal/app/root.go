// Package app contains the Cobra command tree for nocrux.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "nocrux",
	Short: "A painless per-user daemon manager",
	Long: `nocrux starts, stops and inspects per-user background daemons. Daemons
are declared in a configuration file; nocrux keeps no state of its own
between invocations other than the daemons' PID files.

Example ~/.config/nocrux/config.yaml:

  root_dir: ~/.nocrux     # default
  kill_timeout: 10s       # default
  daemons:
    - name: test
      prog: ~/bin/my-daemon.sh

The daemons can then be controlled by the nocrux command:

  $ nocrux start test
  -  [test] running ~/bin/my-daemon.sh
  -  [test] started (PID: 5887)
  $ nocrux status all
  -  [test] started
  $ nocrux tail test
  This is from my-daemon.sh
  ^C
  $ nocrux stop all
  -  [test] stopped`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/nocrux/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}
