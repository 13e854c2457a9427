package decimaldate

import (
	"fmt"
	"iter"
)

// Counter is an unbounded pull iterator of evenly spaced dates, similar to
// itertools.count. It is not safe for concurrent use.
type Counter struct {
	current DecimalDate
	step    int
	started bool
	err     error
}

// Count returns a Counter that starts at start and advances step days on
// every call to Next. A nil start means today. step must not be zero.
func Count(start any, step int) (*Counter, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: count step 0", ErrInvalidValue)
	}
	d, err := New(start)
	if err != nil {
		return nil, err
	}
	return &Counter{current: d, step: step}, nil
}

// Step returns the number of days between produced dates.
func (c *Counter) Step() int { return c.step }

// Next returns the next date in the sequence. Once the sequence would move
// past 9999-12-31 or before 0001-01-01 it returns ErrOverflow, now and on
// every later call.
func (c *Counter) Next() (DecimalDate, error) {
	if c.err != nil {
		return DecimalDate{}, c.err
	}
	if c.started {
		n, err := c.current.Next(c.step)
		if err != nil {
			c.err = err
			return DecimalDate{}, err
		}
		c.current = n
	}
	c.started = true
	return c.current, nil
}

// All adapts the counter for range-over-func. The final element, if the
// consumer gets that far, is the overflow error.
func (c *Counter) All() iter.Seq2[DecimalDate, error] {
	return func(yield func(DecimalDate, error) bool) {
		for {
			d, err := c.Next()
			if !yield(d, err) || err != nil {
				return
			}
		}
	}
}

// Take returns up to n further dates from the counter, stopping early on
// overflow.
func (c *Counter) Take(n int) ([]DecimalDate, error) {
	dates := make([]DecimalDate, 0, max(n, 0))
	for range n {
		d, err := c.Next()
		if err != nil {
			return dates, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}
