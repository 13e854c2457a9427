package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// maxPickOptions bounds the interactive list.
const maxPickOptions = 366

var pickCmd = LeafCommand{
	Use:     "pick <start> <stop>",
	Short:   "Interactively choose a date from a range",
	Example: "  decimaldate pick today +14",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		return runPick(cmd, cfg, args, now, stdinIsTerminal, NewSelectFunc())
	},
}.Build()

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runPick(
	cmd *cobra.Command,
	cfg config.Config,
	args []string,
	nowFunc func() time.Time,
	isTerminal func() bool,
	selectFn SelectFunc,
) error {
	if !isTerminal() {
		return errors.New("pick needs an interactive terminal; use range to list dates instead")
	}

	rng, err := parseRange(args[0], args[1], 1, nowFunc)
	if err != nil {
		return err
	}
	if rng.IsEmpty() {
		return fmt.Errorf("no dates between %s and %s", cfg.Render(rng.Start()), cfg.Render(rng.Stop()))
	}
	if rng.Len() > maxPickOptions {
		return fmt.Errorf("range holds %d dates, pick supports at most %d", rng.Len(), maxPickOptions)
	}

	dates := rng.Dates()
	options := make([]string, len(dates))
	for i, d := range dates {
		options[i] = fmt.Sprintf("%s  %s", cfg.Render(d), d.Time().Weekday().String()[:3])
	}

	idx, err := selectFn("Pick a date", options)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(dates) {
		return fmt.Errorf("selection %d out of range", idx)
	}
	printDate(cmd, cfg, dates[idx])
	return nil
}
