package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMonth(t *testing.T) {
	cmd, out := newTestCmd()

	require.NoError(t, runMonth(cmd, "today", "", fixedNow))

	output := out.String()
	assert.Contains(t, output, "January 2025")
	assert.Contains(t, output, "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, output, "13 14 15 16 17 18 19")
	assert.NotContains(t, output, "wrote")
}

func TestRunMonthPDF(t *testing.T) {
	cmd, out := newTestCmd()
	path := filepath.Join(t.TempDir(), "feb.pdf")

	require.NoError(t, runMonth(cmd, "20240229", path, fixedNow))

	assert.Contains(t, out.String(), "February 2024")
	assert.Contains(t, out.String(), "wrote")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRunMonthPDFIntoDirectory(t *testing.T) {
	cmd, out := newTestCmd()
	dir := t.TempDir()

	require.NoError(t, runMonth(cmd, "20240927", dir, fixedNow))

	assert.FileExists(t, filepath.Join(dir, "september-2024.pdf"))
	assert.Contains(t, out.String(), "september-2024.pdf")
}

func TestRunMonthInvalid(t *testing.T) {
	cmd, _ := newTestCmd()
	assert.Error(t, runMonth(cmd, "20241301", "", fixedNow))
}
