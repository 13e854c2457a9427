package cli

import (
	"fmt"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var countCmd = LeafCommand{
	Use:   "count [start]",
	Short: "List evenly spaced dates starting at start (default today)",
	Example: "  decimaldate count 20230504 --step 7 --limit 4\n" +
		"  decimaldate count --step -1 --limit 3",
	Args:     cobra.RangeArgs(0, 1),
	StrFlags: []StringFlag{outputFlag},
	IntFlags: []IntFlag{
		{Name: "step", Usage: "days between dates, may be negative", Default: 1},
		{Name: "limit", Usage: "number of dates to print", Default: 10},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		start := "today"
		if len(args) > 0 {
			start = args[0]
		}
		step, _ := cmd.Flags().GetInt("step")
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		return runCount(cmd, cfg, start, step, limit, output, now)
	},
}.Build()

// runCount prints up to limit dates. When the sequence runs off the
// calendar the dates produced so far are printed before the error.
func runCount(cmd *cobra.Command, cfg config.Config, startArg string, step, limit int, output string, nowFunc func() time.Time) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", decimaldate.ErrInvalidValue, limit)
	}

	start, err := parseDate(startArg, nowFunc)
	if err != nil {
		return err
	}
	counter, err := decimaldate.Count(start, step)
	if err != nil {
		return err
	}

	dates, takeErr := counter.Take(limit)
	if err := writeDates(cmd.OutOrStdout(), cfg, dates, output); err != nil {
		return err
	}
	return takeErr
}
