package cli

import (
	"fmt"
	"os"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the default config",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return runConfigReset(cmd, homeDir, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm(fmt.Sprintf("Remove %s and restore defaults?", config.Path(homeDir)))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := config.Reset(homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("config reset to defaults"))
	return nil
}
