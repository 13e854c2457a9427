// Package dateexpr parses human date expressions into decimal dates.
package dateexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TorbenJakobsen/decimaldate"
)

// Parse parses a date expression relative to now.
// Supports: "today", "yesterday", "tomorrow", "monday", "next tuesday",
// "on Monday", "+3", "-7", "20240115", "2024_01_15", "2024-01-15",
// "Jan 2", "Jan 2 2006", "January 2", "January 2 2006",
// "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
func Parse(s string, now time.Time) (decimaldate.DecimalDate, error) {
	raw := s
	s = strings.TrimSpace(strings.ToLower(s))

	// Strip "on " prefix
	s = strings.TrimPrefix(s, "on ")
	s = strings.TrimSpace(s)

	today, err := decimaldate.FromTime(now)
	if err != nil {
		return decimaldate.DecimalDate{}, err
	}

	// Relative dates
	switch s {
	case "today", "now":
		return today, nil
	case "tomorrow":
		return today.Next(1)
	case "yesterday":
		return today.Previous(1)
	}

	// Day offsets
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		if n, err := strconv.Atoi(s); err == nil {
			return today.Next(n)
		}
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(today, wd)
	}

	// Decimal literals
	if isDecimalLiteral(s) {
		return decimaldate.FromString(s)
	}

	// Absolute date formats
	layouts := []string{
		"2006-01-02",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	// Month names match case-insensitively, so the lowered input is fine.
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			// For layouts without a year, use the current year
			if !hasYear(layout) {
				return decimaldate.FromParts(today.Year(), int(t.Month()), t.Day())
			}
			return decimaldate.FromTime(t)
		}
	}

	return decimaldate.DecimalDate{}, fmt.Errorf("unrecognized date %q", raw)
}

var weekdays = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

func parseWeekday(s string) (int, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is that weekday, it returns the following week.
func nextWeekday(today decimaldate.DecimalDate, wd int) (decimaldate.DecimalDate, error) {
	daysAhead := wd - today.Weekday()
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.Next(daysAhead)
}

func isDecimalLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
