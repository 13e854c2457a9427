package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var nextCmd = newShiftCmd("next", "Shift a date forward by a number of days", 1)

var prevCmd = newShiftCmd("prev", "Shift a date back by a number of days", -1)

func newShiftCmd(use, short string, direction int) *cobra.Command {
	return LeafCommand{
		Use:     use + " <date> [days]",
		Short:   short,
		Example: fmt.Sprintf("  decimaldate %s 20240227\n  decimaldate %s today 30", use, use),
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, now, err := commandContext(cmd)
			if err != nil {
				return err
			}
			return runShift(cmd, cfg, args, direction, now)
		},
	}.Build()
}

func runShift(cmd *cobra.Command, cfg config.Config, args []string, direction int, nowFunc func() time.Time) error {
	d, err := parseDate(args[0], nowFunc)
	if err != nil {
		return err
	}

	days := 1
	if len(args) > 1 {
		if days, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("%w: days must be an integer, got %q", decimaldate.ErrInvalidType, args[1])
		}
	}

	shifted, err := d.Next(direction * days)
	if err != nil {
		return err
	}
	printDate(cmd, cfg, shifted)
	return nil
}
