package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/TorbenJakobsen/decimaldate/internal/dateexpr"
	"github.com/spf13/cobra"
)

// dateValue is a pflag.Value holding a date expression resolved against now.
type dateValue struct {
	date decimaldate.DecimalDate
	now  func() time.Time
}

func newDateValue(now func() time.Time) *dateValue {
	return &dateValue{now: now}
}

func (v *dateValue) String() string {
	if v.date.IsZero() {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := dateexpr.Parse(s, v.now())
	if err != nil {
		return err
	}
	v.date = d
	return nil
}

func (v *dateValue) Type() string { return "date" }

// parseDate resolves a positional date argument.
func parseDate(arg string, now func() time.Time) (decimaldate.DecimalDate, error) {
	return dateexpr.Parse(arg, now())
}

// clockFor returns the reference clock for relative date expressions. The
// --now flag pins it to a fixed day.
func clockFor(cmd *cobra.Command) func() time.Time {
	if f := cmd.Flag("now"); f != nil && f.Changed {
		if v, ok := f.Value.(*dateValue); ok && !v.date.IsZero() {
			t := v.date.Time()
			return func() time.Time { return t }
		}
	}
	return time.Now
}

// loadOutputConfig reads the stored config and applies --format, --sep and
// --iso, in that order.
func loadOutputConfig(cmd *cobra.Command, homeDir string) (config.Config, error) {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Flag("format"); f != nil && f.Changed {
		if cfg, err = cfg.Set(config.KeyFormat, f.Value.String()); err != nil {
			return config.Config{}, err
		}
	}
	if f := cmd.Flag("sep"); f != nil && f.Changed {
		cfg.Separator = f.Value.String()
		if cfg.Format == config.FormatCompact {
			cfg.Format = config.FormatSeparated
		}
	}
	if f := cmd.Flag("iso"); f != nil && f.Changed && f.Value.String() == "true" {
		cfg.Format = config.FormatISO
	}
	return cfg, nil
}

// commandContext collects the output config and clock shared by the date commands.
func commandContext(cmd *cobra.Command) (config.Config, func() time.Time, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := loadOutputConfig(cmd, homeDir)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, clockFor(cmd), nil
}

// printDate writes d on its own line using cfg.
func printDate(cmd *cobra.Command, cfg config.Config, d decimaldate.DecimalDate) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cfg.Render(d))
}
