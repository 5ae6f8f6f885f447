package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered daemons",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, reg, _, err := newController()
	if err != nil {
		return err
	}

	for _, name := range reg.Names() {
		fmt.Println(name)
	}
	return nil
}
