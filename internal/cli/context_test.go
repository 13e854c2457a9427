package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday.
var testNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// newTestCmd returns a standalone command that captures output.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd.Flags())
	cmd.SetOut(buf)
	return cmd, buf
}

func TestDateValue(t *testing.T) {
	v := newDateValue(fixedNow)
	assert.Equal(t, "date", v.Type())
	assert.Equal(t, "", v.String())

	require.NoError(t, v.Set("tomorrow"))
	assert.Equal(t, "20250116", v.String())

	require.NoError(t, v.Set("2024_09_27"))
	assert.Equal(t, "20240927", v.String())

	assert.ErrorContains(t, v.Set("someday"), "unrecognized date")
	assert.Equal(t, "20240927", v.String())
}

func TestClockFor(t *testing.T) {
	cmd, _ := newTestCmd()
	assert.WithinDuration(t, time.Now(), clockFor(cmd)(), time.Minute)

	require.NoError(t, cmd.Flags().Set("now", "20240229"))
	now := clockFor(cmd)()
	assert.Equal(t, 2024, now.Year())
	assert.Equal(t, time.February, now.Month())
	assert.Equal(t, 29, now.Day())
}

func TestLoadOutputConfig(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
		want  config.Config
	}{
		{name: "stored defaults", want: config.Default()},
		{name: "sep switches to separated", flags: map[string]string{"sep": "/"}, want: config.Config{Separator: "/", Format: config.FormatSeparated}},
		{name: "iso wins", flags: map[string]string{"sep": "/", "iso": "true"}, want: config.Config{Separator: "/", Format: config.FormatISO}},
		{name: "explicit format", flags: map[string]string{"format": "ISO"}, want: config.Config{Separator: "-", Format: config.FormatISO}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCmd()
			for name, value := range tt.flags {
				require.NoError(t, cmd.Flags().Set(name, value))
			}

			cfg, err := loadOutputConfig(cmd, t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadOutputConfigUsesStoredFile(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, config.Write(homeDir, config.Config{Separator: ".", Format: config.FormatSeparated}))

	cmd, _ := newTestCmd()
	cfg, err := loadOutputConfig(cmd, homeDir)
	require.NoError(t, err)
	assert.Equal(t, config.Config{Separator: ".", Format: config.FormatSeparated}, cfg)
}

func TestLoadOutputConfigInvalidFormat(t *testing.T) {
	cmd, _ := newTestCmd()
	require.NoError(t, cmd.Flags().Set("format", "roman"))

	_, err := loadOutputConfig(cmd, t.TempDir())
	assert.ErrorContains(t, err, "invalid format")
}
