package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "decimaldate",
	Short: "Work with calendar dates as yyyymmdd integers",
	Long: "decimaldate converts, shifts, counts and lays out calendar dates written as\n" +
		"eight digit integers such as 20240927.",
	SilenceUsage: true,
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(yesterdayCmd)
	rootCmd.AddCommand(tomorrowCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(recurCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

// addGlobalFlags registers the output and clock flags shared by every command.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("sep", "", "render dates as yyyy<sep>mm<sep>dd")
	flags.Bool("iso", false, "render dates as yyyy-mm-dd")
	flags.String("format", "", "output format: compact, separated or iso (default from config)")
	flags.Var(newDateValue(time.Now), "now", "reference date for relative expressions such as today or +3")
}

// Root returns the root command, for tooling that walks the command tree.
func Root() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.Execute()
}
