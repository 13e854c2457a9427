package cli

import (
	"errors"
	"testing"

	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminal() bool    { return true }
func notTerminal() bool { return false }

func TestRunPick(t *testing.T) {
	var gotTitle string
	var gotOptions []string
	selectFn := func(title string, options []string) (int, error) {
		gotTitle, gotOptions = title, options
		return 2, nil
	}

	cmd, out := newTestCmd()
	cfg := config.Config{Format: config.FormatISO}
	require.NoError(t, runPick(cmd, cfg, []string{"20230504", "20230508"}, fixedNow, terminal, selectFn))

	assert.Equal(t, "Pick a date", gotTitle)
	assert.Equal(t, []string{
		"2023-05-04  Thu",
		"2023-05-05  Fri",
		"2023-05-06  Sat",
		"2023-05-07  Sun",
	}, gotOptions)
	assert.Equal(t, "2023-05-06\n", out.String())
}

func TestRunPickErrors(t *testing.T) {
	never := func(string, []string) (int, error) {
		t.Fatal("select should not be called")
		return 0, nil
	}

	tests := []struct {
		name       string
		args       []string
		isTerminal func() bool
		wantErr    string
	}{
		{name: "no terminal", args: []string{"20230504", "20230508"}, isTerminal: notTerminal, wantErr: "interactive terminal"},
		{name: "empty range", args: []string{"20230504", "20230504"}, isTerminal: terminal, wantErr: "no dates"},
		{name: "too many", args: []string{"20230101", "20250101"}, isTerminal: terminal, wantErr: "at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCmd()
			err := runPick(cmd, config.Default(), tt.args, fixedNow, tt.isTerminal, never)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunPickSelectError(t *testing.T) {
	failing := func(string, []string) (int, error) { return 0, errors.New("user aborted") }

	cmd, out := newTestCmd()
	err := runPick(cmd, config.Default(), []string{"20230504", "20230508"}, fixedNow, terminal, failing)
	assert.ErrorContains(t, err, "user aborted")
	assert.Empty(t, out.String())
}
