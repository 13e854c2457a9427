package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonth(t *testing.T) {
	tests := []struct {
		name      string
		input     int
		wantRows  int
		wantFirst [2]int // row, column of day 1
		wantLast  int
	}{
		{name: "starts on sunday", input: 2024_09_27, wantRows: 6, wantFirst: [2]int{0, 6}, wantLast: 2024_09_30},
		{name: "fits four rows", input: 2021_02_10, wantRows: 4, wantFirst: [2]int{0, 0}, wantLast: 2021_02_28},
		{name: "leap february", input: 2024_02_29, wantRows: 5, wantFirst: [2]int{0, 3}, wantLast: 2024_02_29},
		{name: "last month of calendar", input: 9999_12_31, wantRows: 5, wantFirst: [2]int{0, 2}, wantLast: 9999_12_31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMonth(decimaldate.MustNew(tt.input))
			require.Len(t, m.Weeks, tt.wantRows)
			assert.Equal(t, 1, m.Weeks[tt.wantFirst[0]][tt.wantFirst[1]].Day())
			assert.Equal(t, tt.wantLast, m.Last.Int())
			assert.Equal(t, 1, m.First.Day())

			count := 0
			for _, week := range m.Weeks {
				for col, day := range week {
					if day.IsZero() {
						continue
					}
					count++
					assert.Equal(t, col, day.Weekday())
					assert.True(t, m.Contains(day))
				}
			}
			assert.Equal(t, m.Last.Day(), count)
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "September 2024", NewMonth(decimaldate.MustNew(2024_09_27)).Title())
	assert.Equal(t, "January 1", NewMonth(decimaldate.MustNew(1_01_01)).Title())
}

func TestRenderText(t *testing.T) {
	m := NewMonth(decimaldate.MustNew(2024_09_27))
	out := RenderText(m, decimaldate.MustNew(2024_09_27))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2+len(m.Weeks))
	assert.Contains(t, lines[0], "September 2024")
	assert.Contains(t, lines[1], "Mo Tu We Th Fr Sa Su")
	assert.True(t, strings.HasSuffix(lines[2], " 1"))
	assert.Contains(t, lines[6], "23 24 25 26 27 28 29")
	assert.Contains(t, lines[7], "30")
}

func TestRenderTextNoHighlight(t *testing.T) {
	out := RenderText(NewMonth(decimaldate.MustNew(2021_02_01)), decimaldate.DecimalDate{})
	assert.Contains(t, out, " 1  2  3  4  5  6  7")
	assert.Contains(t, out, "22 23 24 25 26 27 28")
}

func TestRenderPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "month.pdf")

	require.NoError(t, RenderPDF(NewMonth(decimaldate.MustNew(2024_02_06)), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
