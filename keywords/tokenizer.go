package keywords

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^\w\s]+`)

// Normalize lower-cases text, strips punctuation and splits it into tokens.
// Empty or punctuation-only input yields an empty slice.
func Normalize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}

// FilterStopWords removes tokens found in the stop word set, preserving order.
func FilterStopWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stopWords[tok] {
			kept = append(kept, tok)
		}
	}
	return kept
}
