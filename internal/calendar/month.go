// Package calendar lays out a month of decimal dates as a Monday-first grid
// and renders it for the terminal or as a PDF.
package calendar

import (
	"fmt"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
)

// WeekdayLabels are the column headings, Monday first.
var WeekdayLabels = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Week is one grid row. Cells outside the month are zero DecimalDates.
type Week [7]decimaldate.DecimalDate

// Month is the grid for a single month.
type Month struct {
	First decimaldate.DecimalDate
	Last  decimaldate.DecimalDate
	Weeks []Week
}

// NewMonth returns the grid for the month containing d.
func NewMonth(d decimaldate.DecimalDate) Month {
	first, last := d.StartOfMonth(), d.EndOfMonth()
	m := Month{First: first, Last: last}

	offset := first.Weekday()
	days := last.Day()
	rows := (offset + days + 6) / 7
	m.Weeks = make([]Week, rows)

	for i := range days {
		// Stays inside the month, so Next cannot overflow.
		day, _ := first.Next(i)
		cell := offset + i
		m.Weeks[cell/7][cell%7] = day
	}
	return m
}

// Title returns the month heading, eg. "September 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", time.Month(m.First.Month()), m.First.Year())
}

// Contains reports whether d falls inside the month.
func (m Month) Contains(d decimaldate.DecimalDate) bool {
	return m.First.BeforeOrEqual(d) && d.BeforeOrEqual(m.Last)
}
