// Package stringutil derives file names from titles and command paths.
package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its alphanumeric runs with single hyphens.
func Slugify(s string) string {
	s = nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// FileName returns the slug of title with ext appended. fallback is used when
// title has nothing to slug.
func FileName(title, ext, fallback string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = fallback
	}
	return slug + ext
}
