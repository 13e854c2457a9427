package cli

import (
	"fmt"
	"os"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:     "set <key> <value>",
	Short:   "Store a config value",
	Example: "  decimaldate config set format separated\n  decimaldate config set separator /",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func init() {
	configSetCmd.ValidArgs = config.Keys()
}

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}
	if cfg, err = cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", key, Primary(fmt.Sprintf("%q", stored)))))
	return nil
}
