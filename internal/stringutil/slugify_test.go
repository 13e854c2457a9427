package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"month title", "September 2024", "september-2024"},
		{"command path", "decimaldate config get", "decimaldate-config-get"},
		{"punctuation", "Range [start, stop)", "range-start-stop"},
		{"consecutive specials", "next---prev", "next-prev"},
		{"leading trailing specials", "--iso--", "iso"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "february-2024.pdf", FileName("February 2024", ".pdf", "month"))
	assert.Equal(t, "month.pdf", FileName("***", ".pdf", "month"))
}
