package cli

import (
	"testing"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDay(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		cfg    config.Config
		want   string
	}{
		{name: "today", offset: 0, cfg: config.Default(), want: "20250115\n"},
		{name: "yesterday", offset: -1, cfg: config.Default(), want: "20250114\n"},
		{name: "tomorrow iso", offset: 1, cfg: config.Config{Format: config.FormatISO}, want: "2025-01-16\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCmd()
			require.NoError(t, runDay(cmd, tt.cfg, tt.offset, fixedNow))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunDayAtCalendarEnd(t *testing.T) {
	end := func() time.Time { return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC) }

	cmd, _ := newTestCmd()
	err := runDay(cmd, config.Default(), 1, end)
	assert.ErrorIs(t, err, decimaldate.ErrOverflow)
}
