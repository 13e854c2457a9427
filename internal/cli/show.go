package cli

import (
	"fmt"
	"time"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
)

var showCmd = LeafCommand{
	Use:     "show <date>",
	Short:   "Show the calendar facts for a date",
	Example: "  decimaldate show 2024_09_27\n  decimaldate show 'next friday'",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		return runShow(cmd, cfg, args[0], now)
	},
}.Build()

func runShow(cmd *cobra.Command, cfg config.Config, arg string, nowFunc func() time.Time) error {
	d, err := parseDate(arg, nowFunc)
	if err != nil {
		return err
	}

	today, err := parseDate("today", nowFunc)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	row := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(fmt.Sprintf("%-9s", label+":")), value)
	}

	row("Date", Primary(cfg.Render(d)))
	row("Integer", Text(fmt.Sprintf("%d", d.Int())))
	row("ISO", Text(d.ISOFormat()))
	row("Weekday", Text(fmt.Sprintf("%s (ISO %d)", d.Time().Weekday(), d.ISOWeekday())))
	row("Month", Text(fmt.Sprintf("%s .. %s (%d days)",
		cfg.Render(d.StartOfMonth()), cfg.Render(d.EndOfMonth()), d.LastDayOfMonth())))

	switch diff := d.Sub(today); {
	case diff == 0:
		row("Relative", Info("today"))
	case diff > 0:
		row("Relative", Info(fmt.Sprintf("in %d day%s", diff, plural(diff))))
	default:
		row("Relative", Info(fmt.Sprintf("%d day%s ago", -diff, plural(-diff))))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
