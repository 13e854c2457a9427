package decimaldate

import (
	"fmt"
	"iter"
)

// Range is an immutable half-open sequence of consecutive dates from Start
// (inclusive) to Stop (exclusive).
type Range struct {
	start  DecimalDate
	stop   DecimalDate
	step   int
	length int
}

// NewRange returns the range [start, stop). start and stop accept the same
// values as New except nil. Only a step of 1 is implemented; any other
// non-zero step fails with ErrNotImplemented.
func NewRange(start, stop any, step int) (Range, error) {
	if start == nil {
		return Range{}, fmt.Errorf("%w: range start is nil", ErrInvalidValue)
	}
	if stop == nil {
		return Range{}, fmt.Errorf("%w: range stop is nil", ErrInvalidValue)
	}
	from, err := New(start)
	if err != nil {
		return Range{}, fmt.Errorf("range start: %w", err)
	}
	to, err := New(stop)
	if err != nil {
		return Range{}, fmt.Errorf("range stop: %w", err)
	}
	if step == 0 {
		return Range{}, fmt.Errorf("%w: range step 0", ErrInvalidValue)
	}
	if step != 1 {
		return Range{}, fmt.Errorf("%w: range step %d != 1", ErrNotImplemented, step)
	}
	return Range{
		start:  from,
		stop:   to,
		step:   step,
		length: max(0, to.Sub(from)),
	}, nil
}

// Start returns the first date of the range.
func (r Range) Start() DecimalDate { return r.start }

// Stop returns the exclusive end of the range.
func (r Range) Stop() DecimalDate { return r.stop }

// Step returns the number of days between consecutive dates.
func (r Range) Step() int { return r.step }

// Len returns the number of dates in the range.
func (r Range) Len() int { return r.length }

// IsEmpty reports whether the range holds no dates.
func (r Range) IsEmpty() bool { return r.length == 0 }

// All returns an iterator over the dates in the range. Every call starts
// again from Start.
func (r Range) All() iter.Seq[DecimalDate] {
	return func(yield func(DecimalDate) bool) {
		for current := r.start; current.Before(r.stop); {
			if !yield(current) {
				return
			}
			next, err := current.Next(r.step)
			if err != nil {
				return
			}
			current = next
		}
	}
}

// Dates returns the dates in the range as a slice.
func (r Range) Dates() []DecimalDate {
	dates := make([]DecimalDate, 0, r.length)
	for d := range r.All() {
		dates = append(dates, d)
	}
	return dates
}

// Contains reports whether Start <= d < Stop.
func (r Range) Contains(d DecimalDate) bool {
	return r.start.BeforeOrEqual(d) && d.Before(r.stop)
}

// At returns the date at index i. Negative indices count back from Stop, so
// -1 is the last date in the range.
func (r Range) At(i int) (DecimalDate, error) {
	switch {
	case i == 0:
		return r.start, nil
	case i > 0:
		if i >= r.length {
			return DecimalDate{}, fmt.Errorf("%w: index %d outside [0..%d[", ErrIndexOutOfRange, i, r.length)
		}
		return r.start.Next(i)
	default:
		if i < -r.length {
			return DecimalDate{}, fmt.Errorf("%w: index %d outside [-%d..0[", ErrIndexOutOfRange, i, r.length)
		}
		return r.stop.Previous(-i)
	}
}

func (r Range) String() string {
	return fmt.Sprintf("DecimalDateRange(%s, %s, %d)", r.start, r.stop, r.step)
}
