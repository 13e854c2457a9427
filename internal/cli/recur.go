package cli

import (
	"strings"
	"time"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/TorbenJakobsen/decimaldate/internal/recurrence"
	"github.com/spf13/cobra"
)

var recurCmd = LeafCommand{
	Use:   "recur <start> <stop> <rule>",
	Short: "List the dates of a recurrence rule inside a range",
	Long: "List the dates in [start, stop) matched by a recurrence rule. Rules are\n" +
		"plain phrases (daily, weekdays, weekends, every other week, monthly,\n" +
		"end of month, every 3 days, every 2 weeks, every friday) or raw RRULE text.",
	Example: "  decimaldate recur 20240101 20240201 every friday\n" +
		"  decimaldate recur 20240101 20250101 'FREQ=MONTHLY;BYMONTHDAY=15'",
	Args:     cobra.MinimumNArgs(3),
	StrFlags: []StringFlag{outputFlag},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		return runRecur(cmd, cfg, args, output, now)
	},
}.Build()

func runRecur(cmd *cobra.Command, cfg config.Config, args []string, output string, nowFunc func() time.Time) error {
	rng, err := parseRange(args[0], args[1], 1, nowFunc)
	if err != nil {
		return err
	}
	dates, err := recurrence.ExpandString(strings.Join(args[2:], " "), rng)
	if err != nil {
		return err
	}
	return writeDates(cmd.OutOrStdout(), cfg, dates, output)
}
