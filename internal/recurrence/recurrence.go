// Package recurrence turns recurrence rules into decimal dates.
package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/teambition/rrule-go"
)

var (
	weekdaySet = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	weekendSet = []rrule.Weekday{rrule.SA, rrule.SU}
)

// phrases maps fixed wordings to rule options.
var phrases = map[string]rrule.ROption{
	"daily":              {Freq: rrule.DAILY},
	"every day":          {Freq: rrule.DAILY},
	"weekdays":           {Freq: rrule.WEEKLY, Byweekday: weekdaySet},
	"every weekday":      {Freq: rrule.WEEKLY, Byweekday: weekdaySet},
	"weekends":           {Freq: rrule.WEEKLY, Byweekday: weekendSet},
	"every weekend":      {Freq: rrule.WEEKLY, Byweekday: weekendSet},
	"weekly":             {Freq: rrule.WEEKLY},
	"every week":         {Freq: rrule.WEEKLY},
	"monthly":            {Freq: rrule.MONTHLY},
	"every month":        {Freq: rrule.MONTHLY},
	"yearly":             {Freq: rrule.YEARLY},
	"every year":         {Freq: rrule.YEARLY},
	"end of month":       {Freq: rrule.MONTHLY, Bymonthday: []int{-1}},
	"every end of month": {Freq: rrule.MONTHLY, Bymonthday: []int{-1}},
}

var units = map[string]rrule.Frequency{
	"day":   rrule.DAILY,
	"week":  rrule.WEEKLY,
	"month": rrule.MONTHLY,
	"year":  rrule.YEARLY,
}

// "every 3 days", "every other week", "every second month"
var intervalRe = regexp.MustCompile(`^every (\d+|other|second) (day|week|month|year)s?$`)

// Separators in "every monday, wednesday and friday".
var listSepRe = regexp.MustCompile(`\s*(?:,|\band\b)\s*`)

var weekdayNames = map[string]rrule.Weekday{
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
	"sunday":    rrule.SU,
}

// Parse parses a plain-English or raw RRULE recurrence string. The result
// has no DTSTART unless the raw rule names one.
func Parse(s string) (*rrule.RRule, error) {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")

	if isRawRRule(s) {
		raw := strings.TrimPrefix(strings.ToUpper(s), "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	if opt, ok := phrases[s]; ok {
		return rrule.NewRRule(opt)
	}

	if m := intervalRe.FindStringSubmatch(s); m != nil {
		n := 2
		if m[1] != "other" && m[1] != "second" {
			n, _ = strconv.Atoi(m[1])
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid recurrence %q: interval must be positive", s)
		}
		return rrule.NewRRule(rrule.ROption{Freq: units[m[2]], Interval: n})
	}

	if list, ok := strings.CutPrefix(s, "every "); ok {
		if days, ok := parseWeekdays(list); ok {
			return rrule.NewRRule(rrule.ROption{Freq: rrule.WEEKLY, Byweekday: days})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// parseWeekdays reads a list like "monday, wednesday and friday".
func parseWeekdays(list string) ([]rrule.Weekday, bool) {
	var days []rrule.Weekday
	for _, name := range listSepRe.Split(list, -1) {
		if name == "" {
			continue
		}
		wd, ok := weekdayNames[strings.TrimSuffix(name, "s")]
		if !ok {
			return nil, false
		}
		days = append(days, wd)
	}
	return days, len(days) > 0
}

func isRawRRule(s string) bool {
	return strings.HasPrefix(s, "freq=") || strings.HasPrefix(s, "rrule:")
}
