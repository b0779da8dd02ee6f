// Package slug derives URL-safe, hyphenated identifiers from arbitrary text.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
)

// Make normalizes text into a lowercase hyphen-separated slug. It is total
// and idempotent; empty input yields an empty string.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
