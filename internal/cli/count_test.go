package cli

import (
	"testing"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/TorbenJakobsen/decimaldate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		step  int
		limit int
		want  string
	}{
		{name: "weekly", start: "20230504", step: 7, limit: 3, want: "20230504\n20230511\n20230518\n"},
		{name: "backwards", start: "20240302", step: -1, limit: 3, want: "20240302\n20240301\n20240229\n"},
		{name: "from today", start: "today", step: 1, limit: 2, want: "20250115\n20250116\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCmd()
			require.NoError(t, runCount(cmd, config.Default(), tt.start, tt.step, tt.limit, outputText, fixedNow))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunCountOverflowPrintsPartial(t *testing.T) {
	cmd, out := newTestCmd()

	err := runCount(cmd, config.Default(), "99991229", 1, 5, outputText, fixedNow)
	assert.ErrorIs(t, err, decimaldate.ErrOverflow)
	assert.Equal(t, "99991229\n99991230\n99991231\n", out.String())
}

func TestRunCountErrors(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runCount(cmd, config.Default(), "20230504", 0, 5, outputText, fixedNow)
	assert.ErrorIs(t, err, decimaldate.ErrInvalidValue)

	err = runCount(cmd, config.Default(), "20230504", 1, 0, outputText, fixedNow)
	assert.ErrorIs(t, err, decimaldate.ErrInvalidValue)
}

func TestRunCountJSON(t *testing.T) {
	cmd, out := newTestCmd()
	require.NoError(t, runCount(cmd, config.Default(), "20230504", 1, 2, outputJSON, fixedNow))
	assert.Equal(t, "[20230504,20230505]\n", out.String())
}
