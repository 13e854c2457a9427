package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "section header", line: "Available Commands:", want: []string{"Available Commands:"}},
		{name: "command listing", line: "  next        Shift a date forward by a number of days", want: []string{"next", "Shift a date forward"}},
		{name: "flag line", line: "      --sep string   render dates with this separator", want: []string{"--sep string", "render dates"}},
		{name: "example", line: "  decimaldate next today 7", want: []string{"decimaldate next today 7"}},
		{name: "footer", line: `Use "decimaldate [command] --help" for more information about a command.`, want: []string{"decimaldate [command]"}},
		{name: "plain text", line: "Work with dates as yyyymmdd integers", want: []string{"Work with dates as yyyymmdd integers"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := colorizeLine(tt.line)
			for _, w := range tt.want {
				assert.Contains(t, result, w)
			}
		})
	}
}

func TestColorizedHelpFuncProducesOutput(t *testing.T) {
	// Standalone command to avoid re-parenting shared subcommands
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
		Long:  "A longer description of the test app",
	}
	cmd.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	colorizedHelpFunc()(cmd, []string{})

	output := buf.String()
	assert.Contains(t, output, "A longer description")
	assert.Contains(t, output, "test-app")
	assert.Contains(t, output, "Flags:")
}

func TestColorizedHelpFuncRestoresWriter(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "test-app",
		Short: "A test CLI app",
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	colorizedHelpFunc()(cmd, []string{})

	buf.Reset()
	cmd.Print("test")
	assert.Equal(t, "test", buf.String())
}

func TestRootHelpListsCommands(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = rootCmd.Flags().Set("help", "false")
	})

	assert.NoError(t, rootCmd.Execute())
	for _, name := range []string{"today", "range", "count", "month", "recur"} {
		assert.Contains(t, buf.String(), name)
	}
}
