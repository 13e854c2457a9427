// Package decimaldate provides a calendar date encoded as the decimal integer
// yyyymmdd, and a lazily evaluated range over consecutive dates.
//
// Dates are civil and timezone-naive, using the proleptic Gregorian calendar
// for years 1 through 9999.
package decimaldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 1
	maxYear = 9999

	secondsPerDay = 24 * 60 * 60
)

// nowFunc is the host clock. Tests replace it.
var nowFunc = time.Now

// DecimalDate is an immutable calendar date with the integer value yyyymmdd.
// The zero value is not a valid date; use New or one of the From functions.
type DecimalDate struct {
	value int
	str   string
	t     time.Time
	year  int
	month int
	day   int
}

// New creates a DecimalDate from src, which may be:
//   - nil for today's date
//   - an integer on the form yyyymmdd
//   - a string holding such an integer
//   - a time.Time (only its wall-clock date is used)
//   - another DecimalDate
//
// Any other type fails with ErrInvalidType.
func New(src any) (DecimalDate, error) {
	switch v := src.(type) {
	case nil:
		return Today(), nil
	case DecimalDate:
		return v.checked()
	case *DecimalDate:
		if v == nil {
			return Today(), nil
		}
		return v.checked()
	case time.Time:
		return FromTime(v)
	case *time.Time:
		if v == nil {
			return Today(), nil
		}
		return FromTime(*v)
	case string:
		return FromString(v)
	case int:
		return FromInt(v)
	case int8:
		return FromInt(int(v))
	case int16:
		return FromInt(int(v))
	case int32:
		return FromInt(int(v))
	case int64:
		return fromInt64(v)
	case uint:
		return fromUint64(uint64(v))
	case uint8:
		return FromInt(int(v))
	case uint16:
		return FromInt(int(v))
	case uint32:
		return fromInt64(int64(v))
	case uint64:
		return fromUint64(v)
	default:
		return DecimalDate{}, fmt.Errorf("%w: %T(%v) is not a valid literal on the form yyyymmdd", ErrInvalidType, src, src)
	}
}

// MustNew is like New but panics if src is not a valid date.
func MustNew(src any) DecimalDate {
	d, err := New(src)
	if err != nil {
		panic(err)
	}
	return d
}

// TryNew is like New but reports failure as false instead of an error.
func TryNew(src any) (DecimalDate, bool) {
	d, err := New(src)
	if err != nil {
		return DecimalDate{}, false
	}
	return d, true
}

// FromInt creates a DecimalDate from an integer on the form yyyymmdd.
func FromInt(v int) (DecimalDate, error) {
	if v < 0 {
		return DecimalDate{}, fmt.Errorf("%w: %d is not a valid date", ErrInvalidValue, v)
	}
	year, month, day := split(v)
	d, err := FromParts(year, month, day)
	if err != nil {
		return DecimalDate{}, fmt.Errorf("%w: %d is not a valid date", ErrInvalidValue, v)
	}
	return d, nil
}

func fromInt64(v int64) (DecimalDate, error) {
	if v < 0 || v > maxYear*10000+1231 {
		return DecimalDate{}, fmt.Errorf("%w: %d is not a valid date", ErrInvalidValue, v)
	}
	return FromInt(int(v))
}

func fromUint64(v uint64) (DecimalDate, error) {
	if v > maxYear*10000+1231 {
		return DecimalDate{}, fmt.Errorf("%w: %d is not a valid date", ErrInvalidValue, v)
	}
	return FromInt(int(v))
}

// FromString creates a DecimalDate from a string holding an integer on the
// form yyyymmdd, eg. "20240927" or "2024_09_27".
func FromString(s string) (DecimalDate, error) {
	v, err := parseLiteral(s)
	if err != nil {
		return DecimalDate{}, fmt.Errorf("%w: argument %q is not a valid literal", ErrInvalidValue, s)
	}
	return fromInt64(v)
}

// FromTime creates a DecimalDate from the year, month and day of t as seen in
// t's own location. The time of day and the location are discarded.
func FromTime(t time.Time) (DecimalDate, error) {
	year, month, day := t.Date()
	d, err := FromParts(year, int(month), day)
	if err != nil {
		return DecimalDate{}, fmt.Errorf("%w: %s is outside the supported calendar", ErrInvalidValue, t.Format(time.DateOnly))
	}
	return d, nil
}

// FromParts creates a DecimalDate from a year, month and day.
func FromParts(year, month, day int) (DecimalDate, error) {
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return DecimalDate{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid date", ErrInvalidValue, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowing days, eg. Feb 30 becomes Mar 1 or 2.
	if t.Day() != day {
		return DecimalDate{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid date", ErrInvalidValue, year, month, day)
	}
	return build(year, month, day, t), nil
}

func build(year, month, day int, t time.Time) DecimalDate {
	v := ymdAsInt(year, month, day)
	return DecimalDate{
		value: v,
		str:   fmt.Sprintf("%08d", v),
		t:     t,
		year:  year,
		month: month,
		day:   day,
	}
}

// fromCalendar builds a DecimalDate from a midnight UTC time, failing with
// ErrOverflow outside years 1-9999.
func fromCalendar(t time.Time) (DecimalDate, error) {
	year, month, day := t.Date()
	if year < minYear || year > maxYear {
		return DecimalDate{}, fmt.Errorf("%w: year %d is outside [%d, %d]", ErrOverflow, year, minYear, maxYear)
	}
	return build(year, int(month), day, t), nil
}

// checked guards against conversions from the zero value.
func (d DecimalDate) checked() (DecimalDate, error) {
	if d.IsZero() {
		return DecimalDate{}, fmt.Errorf("%w: zero DecimalDate", ErrInvalidValue)
	}
	return d, nil
}

// Today returns today's date from the host clock, timezone-naive.
func Today() DecimalDate {
	now := nowFunc()
	year, month, day := now.Date()
	return build(year, int(month), day, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Yesterday returns the day before Today.
func Yesterday() DecimalDate {
	return Today().mustNext(-1)
}

// Tomorrow returns the day after Today.
func Tomorrow() DecimalDate {
	return Today().mustNext(1)
}

func (d DecimalDate) mustNext(days int) DecimalDate {
	n, err := d.Next(days)
	if err != nil {
		panic(err)
	}
	return n
}

func split(v int) (year, month, day int) {
	year, remain := v/10000, v%10000
	month, day = remain/100, remain%100
	return
}

func ymdAsInt(year, month, day int) int {
	return year*10000 + month*100 + day
}

// parseLiteral parses a base 10 integer literal the way Python's int() does:
// surrounding whitespace, an optional sign and single underscores between
// digits are accepted.
func parseLiteral(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "_") {
		digits := strings.TrimLeft(s, "+-")
		if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") || strings.Contains(digits, "__") {
			return 0, strconv.ErrSyntax
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.ParseInt(s, 10, 64)
}

// IsZero reports whether d is the zero value, which is not a valid date.
func (d DecimalDate) IsZero() bool {
	return d.value == 0
}

// Split returns the year, month and day of d.
func (d DecimalDate) Split() (year, month, day int) {
	return d.year, d.month, d.day
}

// Year returns the year (1-9999).
func (d DecimalDate) Year() int { return d.year }

// Month returns the month (1-12).
func (d DecimalDate) Month() int { return d.month }

// Day returns the day of the month (1-31).
func (d DecimalDate) Day() int { return d.day }

// Int returns the date as an integer on the form yyyymmdd.
func (d DecimalDate) Int() int {
	return d.value
}

// String returns the date as the 8 digit string "yyyymmdd".
func (d DecimalDate) String() string {
	if d.str == "" {
		return fmt.Sprintf("%08d", d.value)
	}
	return d.str
}

// Format returns the date as "yyyymmdd", or as "yyyy{sep}mm{sep}dd" when sep
// is not empty.
func (d DecimalDate) Format(sep string) string {
	if sep == "" {
		return d.String()
	}
	return fmt.Sprintf("%04d%s%02d%s%02d", d.year, sep, d.month, sep, d.day)
}

// ISOFormat returns the date as "yyyy-mm-dd".
func (d DecimalDate) ISOFormat() string {
	return d.Format("-")
}

// GoString implements fmt.GoStringer.
func (d DecimalDate) GoString() string {
	return "DecimalDate(" + d.String() + ")"
}

// Time returns the date as midnight UTC. The location carries no meaning.
func (d DecimalDate) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week where Monday is 0 and Sunday is 6.
func (d DecimalDate) Weekday() int {
	return (int(d.t.Weekday()) + 6) % 7
}

// ISOWeekday returns the day of the week where Monday is 1 and Sunday is 7.
func (d DecimalDate) ISOWeekday() int {
	return d.Weekday() + 1
}

// LastDayOfMonth returns the last day (28-31) of d's month.
func (d DecimalDate) LastDayOfMonth() int {
	return endOfMonth(d.t).Day()
}

// StartOfMonth returns the first day of d's month.
func (d DecimalDate) StartOfMonth() DecimalDate {
	return build(d.year, d.month, 1, time.Date(d.year, time.Month(d.month), 1, 0, 0, 0, 0, time.UTC))
}

// EndOfMonth returns the last day of d's month.
func (d DecimalDate) EndOfMonth() DecimalDate {
	t := endOfMonth(d.t)
	return build(d.year, d.month, t.Day(), t)
}

func endOfMonth(t time.Time) time.Time {
	// Day 28 exists in every month and 4 days later is always the next month.
	next := time.Date(t.Year(), t.Month(), 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 4)
	return next.AddDate(0, 0, -next.Day())
}

// Next returns the date days after d. Zero returns an equal date and a
// negative value moves into the past. Leaving the supported calendar fails
// with ErrOverflow.
func (d DecimalDate) Next(days int) (DecimalDate, error) {
	if d.IsZero() {
		return DecimalDate{}, fmt.Errorf("%w: zero DecimalDate", ErrInvalidValue)
	}
	// Bound the delta before AddDate so huge values cannot wrap time.Time.
	const span = (maxYear - minYear + 1) * 366
	if days > span || days < -span {
		return DecimalDate{}, fmt.Errorf("%w: %d days from %s", ErrOverflow, days, d)
	}
	n, err := fromCalendar(d.t.AddDate(0, 0, days))
	if err != nil {
		return DecimalDate{}, fmt.Errorf("%d days from %s: %w", days, d, err)
	}
	return n, nil
}

// Previous returns the date days before d; it is Next(-days).
func (d DecimalDate) Previous(days int) (DecimalDate, error) {
	return d.Next(-days)
}

// Sub returns the number of days from o to d.
func (d DecimalDate) Sub(o DecimalDate) int {
	// time.Duration saturates after ~292 years, so go through Unix seconds.
	return int((d.t.Unix() - o.t.Unix()) / secondsPerDay)
}

// Clone returns a copy of d. DecimalDate is immutable so plain assignment
// is equivalent.
func (d DecimalDate) Clone() DecimalDate {
	return d
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d DecimalDate) Compare(o DecimalDate) int {
	switch {
	case d.value < o.value:
		return -1
	case d.value > o.value:
		return 1
	}
	return 0
}

// Equal reports whether d and o are the same date.
func (d DecimalDate) Equal(o DecimalDate) bool { return d.value == o.value }

// Before reports whether d is before o.
func (d DecimalDate) Before(o DecimalDate) bool { return d.value < o.value }

// After reports whether d is after o.
func (d DecimalDate) After(o DecimalDate) bool { return d.value > o.value }

// BeforeOrEqual reports whether d is not after o.
func (d DecimalDate) BeforeOrEqual(o DecimalDate) bool { return d.value <= o.value }

// AfterOrEqual reports whether d is not before o.
func (d DecimalDate) AfterOrEqual(o DecimalDate) bool { return d.value >= o.value }
