package cli

import (
	"fmt"
	"os"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show one or all config values",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, homeDir, args)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir string, args []string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, value)
		return nil
	}

	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(key+":"), Primary(fmt.Sprintf("%q", value)))
	}
	return nil
}
