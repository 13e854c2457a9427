package cli

import (
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var todayCmd = newDayCmd("today", "Print today's date", 0)

var yesterdayCmd = newDayCmd("yesterday", "Print yesterday's date", -1)

var tomorrowCmd = newDayCmd("tomorrow", "Print tomorrow's date", 1)

func newDayCmd(use, short string, offset int) *cobra.Command {
	return LeafCommand{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, now, err := commandContext(cmd)
			if err != nil {
				return err
			}
			return runDay(cmd, cfg, offset, now)
		},
	}.Build()
}

func runDay(cmd *cobra.Command, cfg config.Config, offset int, nowFunc func() time.Time) error {
	today, err := decimaldate.FromTime(nowFunc())
	if err != nil {
		return err
	}
	d, err := today.Next(offset)
	if err != nil {
		return err
	}
	printDate(cmd, cfg, d)
	return nil
}
