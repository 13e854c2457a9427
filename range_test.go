package decimaldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(dates []DecimalDate) []int {
	out := make([]int, len(dates))
	for i, d := range dates {
		out[i] = d.Int()
	}
	return out
}

func mustRange(t *testing.T, start, stop any) Range {
	t.Helper()
	r, err := NewRange(start, stop, 1)
	require.NoError(t, err)
	return r
}

func TestNewRangeErrors(t *testing.T) {
	tests := []struct {
		name    string
		start   any
		stop    any
		step    int
		wantErr error
	}{
		{name: "nil start", start: nil, stop: 2023_11_15, step: 1, wantErr: ErrInvalidValue},
		{name: "nil stop", start: 2023_11_11, stop: nil, step: 1, wantErr: ErrInvalidValue},
		{name: "bad start", start: "bad", stop: 2023_11_15, step: 1, wantErr: ErrInvalidValue},
		{name: "bad stop", start: 2023_11_11, stop: 2023_13_15, step: 1, wantErr: ErrInvalidValue},
		{name: "wrong type", start: 1.5, stop: 2023_11_15, step: 1, wantErr: ErrInvalidType},
		{name: "zero step", start: 2023_11_11, stop: 2023_11_15, step: 0, wantErr: ErrInvalidValue},
		{name: "step 2", start: 2023_11_11, stop: 2023_11_15, step: 2, wantErr: ErrNotImplemented},
		{name: "negative step", start: 2023_11_15, stop: 2023_11_11, step: -1, wantErr: ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.start, tt.stop, tt.step)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRangeMixedSources(t *testing.T) {
	r, err := NewRange("20230504", time.Date(2023, 5, 7, 12, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	assert.Equal(t, 2023_05_04, r.Start().Int())
	assert.Equal(t, 2023_05_07, r.Stop().Int())
	assert.Equal(t, 1, r.Step())
	assert.Equal(t, "DecimalDateRange(20230504, 20230507, 1)", r.String())
}

func TestRangeLen(t *testing.T) {
	tests := []struct {
		name  string
		start int
		stop  int
		want  int
	}{
		{name: "four days", start: 2023_11_11, stop: 2023_11_15, want: 4},
		{name: "empty", start: 2023_11_11, stop: 2023_11_11, want: 0},
		{name: "reversed", start: 2023_11_15, stop: 2023_11_11, want: 0},
		{name: "across leap day", start: 2024_02_28, stop: 2024_03_01, want: 2},
		{name: "whole year", start: 2024_01_01, stop: 2025_01_01, want: 366},
		{name: "whole calendar", start: 1_01_01, stop: 9999_12_31, want: 3652058},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRange(t, tt.start, tt.stop)
			assert.Equal(t, tt.want, r.Len())
			assert.Equal(t, tt.want == 0, r.IsEmpty())
		})
	}
}

func TestRangeIteration(t *testing.T) {
	r := mustRange(t, 2023_05_04, 2023_05_07)
	want := []int{2023_05_04, 2023_05_05, 2023_05_06}

	assert.Equal(t, want, ints(r.Dates()))
	// A range can be iterated more than once.
	assert.Equal(t, want, ints(r.Dates()))

	var got []int
	for d := range r.All() {
		got = append(got, d.Int())
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], got)
}

func TestRangeIterationEmpty(t *testing.T) {
	for _, r := range []Range{mustRange(t, 2023_05_04, 2023_05_04), mustRange(t, 2023_05_07, 2023_05_04)} {
		count := 0
		for range r.All() {
			count++
		}
		assert.Zero(t, count)
		assert.Empty(t, r.Dates())
	}
}

func TestRangeIterationEndOfCalendar(t *testing.T) {
	r := mustRange(t, 9999_12_29, 9999_12_31)
	assert.Equal(t, []int{9999_12_29, 9999_12_30}, ints(r.Dates()))
}

func TestRangeContains(t *testing.T) {
	r := mustRange(t, 2023_11_11, 2023_11_22)

	assert.True(t, r.Contains(MustNew(2023_11_16)))
	assert.True(t, r.Contains(r.Start()))
	assert.True(t, r.Contains(MustNew(2023_11_21)))
	assert.False(t, r.Contains(r.Stop()))
	assert.False(t, r.Contains(MustNew(2023_11_10)))
	assert.False(t, r.Contains(MustNew(2024_11_16)))

	empty := mustRange(t, 2023_11_11, 2023_11_11)
	assert.False(t, empty.Contains(MustNew(2023_11_11)))
}

func TestRangeAt(t *testing.T) {
	r := mustRange(t, 2023_05_04, 2023_05_07)

	tests := []struct {
		name    string
		index   int
		want    int
		wantErr error
	}{
		{name: "first", index: 0, want: 2023_05_04},
		{name: "second", index: 1, want: 2023_05_05},
		{name: "last", index: 2, want: 2023_05_06},
		{name: "past end", index: 3, wantErr: ErrIndexOutOfRange},
		{name: "minus one", index: -1, want: 2023_05_06},
		{name: "minus three", index: -3, want: 2023_05_04},
		{name: "minus four", index: -4, wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.At(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int())
		})
	}
}

func TestRangeAtMatchesIteration(t *testing.T) {
	r := mustRange(t, 2024_02_20, 2024_03_05)
	dates := r.Dates()
	require.Len(t, dates, r.Len())

	for i, want := range dates {
		got, err := r.At(i)
		require.NoError(t, err)
		assert.True(t, got.Equal(want))

		got, err = r.At(i - r.Len())
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	}
}

func TestRangeAtZeroOnEmptyRange(t *testing.T) {
	r := mustRange(t, 2023_05_04, 2023_05_04)

	got, err := r.At(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(r.Start()))

	_, err = r.At(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = r.At(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
