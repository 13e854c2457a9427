package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo records the build metadata injected by the linker.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var versionCmd = LeafCommand{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "short", Usage: "print only the version number"},
		{Name: "verbose", Usage: "include the Go toolchain and platform"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		verbose, _ := cmd.Flags().GetBool("verbose")
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString(short, verbose))
		return err
	},
}.Build()

func versionString(short, verbose bool) string {
	if short {
		return appVersion
	}
	s := fmt.Sprintf("decimaldate %s (commit: %s, built: %s)", appVersion, appCommit, appDate)
	if verbose {
		s += fmt.Sprintf(" %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return s
}
