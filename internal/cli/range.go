package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var rangeCmd = LeafCommand{
	Use:   "range <start> <stop>",
	Short: "List the dates from start up to, but not including, stop",
	Example: "  decimaldate range 20230504 20230508\n" +
		"  decimaldate range today +7 --output json",
	Args:     cobra.ExactArgs(2),
	StrFlags: []StringFlag{outputFlag},
	IntFlags: []IntFlag{{Name: "step", Usage: "days between dates (only 1 is supported)", Default: 1}},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		step, _ := cmd.Flags().GetInt("step")
		output, _ := cmd.Flags().GetString("output")
		return runRange(cmd, cfg, args[0], args[1], step, output, now)
	},
}.Build()

var containsCmd = LeafCommand{
	Use:     "contains <start> <stop> <date>",
	Short:   "Report whether a date falls inside a range",
	Example: "  decimaldate contains 20230504 20230508 20230507",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		return runContains(cmd, args, now)
	},
}.Build()

var indexCmd = LeafCommand{
	Use:   "index <start> <stop> [--] <i>",
	Short: "Print the date at an index of a range",
	Long: "Print the date at index i of the range [start, stop). Negative indices\n" +
		"count back from stop; put them after -- so they are not read as flags.",
	Example: "  decimaldate index 20230504 20230508 2\n  decimaldate index 20230504 20230508 -- -1",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		return runIndex(cmd, cfg, args, now)
	},
}.Build()

// parseRange resolves two positional date arguments into a range.
func parseRange(startArg, stopArg string, step int, nowFunc func() time.Time) (decimaldate.Range, error) {
	start, err := parseDate(startArg, nowFunc)
	if err != nil {
		return decimaldate.Range{}, err
	}
	stop, err := parseDate(stopArg, nowFunc)
	if err != nil {
		return decimaldate.Range{}, err
	}
	return decimaldate.NewRange(start, stop, step)
}

func runRange(cmd *cobra.Command, cfg config.Config, startArg, stopArg string, step int, output string, nowFunc func() time.Time) error {
	rng, err := parseRange(startArg, stopArg, step, nowFunc)
	if err != nil {
		return err
	}
	return writeDates(cmd.OutOrStdout(), cfg, rng.Dates(), output)
}

func runContains(cmd *cobra.Command, args []string, nowFunc func() time.Time) error {
	rng, err := parseRange(args[0], args[1], 1, nowFunc)
	if err != nil {
		return err
	}
	d, err := parseDate(args[2], nowFunc)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), rng.Contains(d))
	return nil
}

func runIndex(cmd *cobra.Command, cfg config.Config, args []string, nowFunc func() time.Time) error {
	rng, err := parseRange(args[0], args[1], 1, nowFunc)
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: index must be an integer, got %q", decimaldate.ErrInvalidType, args[2])
	}
	d, err := rng.At(i)
	if err != nil {
		return err
	}
	printDate(cmd, cfg, d)
	return nil
}
