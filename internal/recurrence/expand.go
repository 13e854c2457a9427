package recurrence

import (
	"github.com/TorbenJakobsen/decimaldate"
	"github.com/teambition/rrule-go"
)

// Expand evaluates r over the half-open range rng and returns the matching
// dates in order. Rules without a DTSTART are anchored at the range start;
// rules with one keep it.
func Expand(r *rrule.RRule, rng decimaldate.Range) ([]decimaldate.DecimalDate, error) {
	if rng.IsEmpty() {
		return nil, nil
	}

	from, to := rng.Start().Time(), rng.Stop().Time()

	opts := r.OrigOptions
	if opts.Dtstart.IsZero() {
		opts.Dtstart = from
	}
	anchored, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}

	var dates []decimaldate.DecimalDate
	for _, t := range anchored.Between(from, to, true) {
		d, err := decimaldate.FromTime(t)
		if err != nil {
			return nil, err
		}
		// Between is inclusive on both ends and the range is not.
		if !rng.Contains(d) {
			continue
		}
		// Sub-daily rules can hit the same day more than once.
		if n := len(dates); n > 0 && dates[n-1].Equal(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ExpandString parses rule and expands it over rng.
func ExpandString(rule string, rng decimaldate.Range) ([]decimaldate.DecimalDate, error) {
	r, err := Parse(rule)
	if err != nil {
		return nil, err
	}
	return Expand(r, rng)
}
