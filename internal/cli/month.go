package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TorbenJakobsen/decimaldate/internal/calendar"
	"github.com/TorbenJakobsen/decimaldate/internal/stringutil"
	"github.com/spf13/cobra"
)

var monthCmd = LeafCommand{
	Use:     "month [date]",
	Short:   "Print the calendar month containing a date (default today)",
	Example: "  decimaldate month\n  decimaldate month 20240927 --pdf september.pdf",
	Args:    cobra.RangeArgs(0, 1),
	StrFlags: []StringFlag{
		{Name: "pdf", Usage: "also write the month as a PDF to this file or directory"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, now, err := commandContext(cmd)
		if err != nil {
			return err
		}
		arg := "today"
		if len(args) > 0 {
			arg = args[0]
		}
		pdfPath, _ := cmd.Flags().GetString("pdf")
		return runMonth(cmd, arg, pdfPath, now)
	},
}.Build()

func runMonth(cmd *cobra.Command, arg, pdfPath string, nowFunc func() time.Time) error {
	d, err := parseDate(arg, nowFunc)
	if err != nil {
		return err
	}

	m := calendar.NewMonth(d)
	_, _ = fmt.Fprint(cmd.OutOrStdout(), calendar.RenderText(m, d))

	if pdfPath == "" {
		return nil
	}
	pdfPath = pdfFilePath(pdfPath, m)
	if err := calendar.RenderPDF(m, pdfPath); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("wrote"), Primary(pdfPath))
	return nil
}

// pdfFilePath names the file after the month when path is a directory.
func pdfFilePath(path string, m calendar.Month) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, stringutil.FileName(m.Title(), ".pdf", "month"))
	}
	return path
}
