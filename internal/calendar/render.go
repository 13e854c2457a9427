package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/charmbracelet/lipgloss"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const cellWidth = 3

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Width(7 * cellWidth).Align(lipgloss.Center)
	headingStyle   = lipgloss.NewStyle().Faint(true)
	weekendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	highlightStyle = lipgloss.NewStyle().Reverse(true)
)

// RenderText draws m as a terminal calendar. highlight is marked when it
// falls inside the month; pass the zero value to mark nothing.
func RenderText(m Month, highlight decimaldate.DecimalDate) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n")

	labels := make([]string, len(WeekdayLabels))
	for i, l := range WeekdayLabels {
		labels[i] = fmt.Sprintf("%-*s", cellWidth, l)
	}
	b.WriteString(headingStyle.Render(strings.TrimRight(strings.Join(labels, ""), " ")))
	b.WriteString("\n")

	for _, week := range m.Weeks {
		var row strings.Builder
		for col, day := range week {
			if col > 0 {
				row.WriteString(" ")
			}
			if day.IsZero() {
				row.WriteString("  ")
				continue
			}
			cell := fmt.Sprintf("%2d", day.Day())
			switch {
			case !highlight.IsZero() && day.Equal(highlight):
				cell = highlightStyle.Render(cell)
			case col >= 5:
				cell = weekendStyle.Render(cell)
			}
			row.WriteString(cell)
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// RenderPDF generates a one page PDF calendar for m and saves it to
// outputPath.
func RenderPDF(m Month, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithMaxGridSize(7).
		Build()

	doc := maroto.New(cfg)

	// Document header
	doc.AddRow(14,
		text.NewCol(7, m.Title(), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	doc.AddRow(8,
		text.NewCol(7, fmt.Sprintf("%s to %s", m.First, m.Last), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}),
	)
	doc.AddRow(4, line.NewCol(7, props.Line{Color: &pdfLineColor}))

	// Weekday headings
	headings := make([]core.Col, 0, len(WeekdayLabels))
	for _, l := range WeekdayLabels {
		headings = append(headings, text.NewCol(1, l, props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Align: align.Center,
			Color: &pdfHeaderColor,
		}))
	}
	doc.AddRow(10, headings...)

	for _, week := range m.Weeks {
		cells := make([]core.Col, 0, len(week))
		for _, day := range week {
			label := ""
			if !day.IsZero() {
				label = strconv.Itoa(day.Day())
			}
			cells = append(cells, text.NewCol(1, label, props.Text{
				Size:  12,
				Align: align.Center,
			}))
		}
		doc.AddRow(16, cells...)
	}

	pdf, err := doc.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return pdf.Save(outputPath)
}
