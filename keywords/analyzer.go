// Package keywords implements keyword statistics over arbitrary page content:
// density calculation, frequency-based extraction and competition
// classification against fixed keyword tables.
package keywords

import (
	"math"
	"sort"
	"strings"
)

// Density band considered healthy for a target keyword.
const (
	OptimalDensityMin = 1.0
	OptimalDensityMax = 3.0
)

// DefaultExtractLimit caps ExtractKeywords when the caller passes no limit.
const DefaultExtractLimit = 10

// Competition describes how contested a keyword is.
type Competition struct {
	Difficulty     string `json:"difficulty"`
	Volume         string `json:"volume"`
	Recommendation string `json:"recommendation"`
}

// StuffingReport is the advisory result of a keyword stuffing check.
type StuffingReport struct {
	Density float64 `json:"density"`
	Stuffed bool    `json:"stuffed"`
}

// Density returns how often keyword occurs in text, as a percentage of the
// total token count rounded to two decimals. Matching is case-insensitive
// and on whole-word boundaries; multi-word keywords match runs of
// consecutive tokens. Empty text yields 0 rather than an error.
func Density(text, keyword string) float64 {
	tokens := Normalize(text)
	if len(tokens) == 0 {
		return 0
	}
	kw := Normalize(keyword)
	if len(kw) == 0 {
		return 0
	}
	matches := 0
	for i := 0; i+len(kw) <= len(tokens); i++ {
		if tokensEqual(tokens[i:i+len(kw)], kw) {
			matches++
		}
	}
	return round2(float64(matches) / float64(len(tokens)) * 100)
}

func tokensEqual(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MultiDensity computes Density independently for each keyword. Keys are
// lower-cased, so duplicate keywords collapse to one entry with the last
// occurrence winning.
func MultiDensity(text string, kws []string) map[string]float64 {
	out := make(map[string]float64, len(kws))
	for _, kw := range kws {
		out[strings.ToLower(kw)] = Density(text, kw)
	}
	return out
}

// IsDensityOptimal reports whether d falls inside the healthy 1-3% band.
func IsDensityOptimal(d float64) bool {
	return d >= OptimalDensityMin && d <= OptimalDensityMax
}

// CheckStuffing flags a keyword whose density exceeds the healthy ceiling.
func CheckStuffing(text, keyword string) StuffingReport {
	d := Density(text, keyword)
	return StuffingReport{Density: d, Stuffed: d > OptimalDensityMax}
}

// ExtractKeywords returns up to limit of the most frequent tokens in text,
// after stop-word filtering and dropping tokens of three characters or
// fewer. Ties are broken by first occurrence. A non-positive limit means
// DefaultExtractLimit.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultExtractLimit
	}

	tokens := FilterStopWords(Normalize(text))
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	uniq := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if len(tok) <= 3 {
			continue
		}
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
			uniq = append(uniq, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(uniq, func(i, j int) bool {
		if counts[uniq[i]] != counts[uniq[j]] {
			return counts[uniq[i]] > counts[uniq[j]]
		}
		return firstSeen[uniq[i]] < firstSeen[uniq[j]]
	})

	if len(uniq) > limit {
		uniq = uniq[:limit]
	}
	return uniq
}

// ExtractFromSlug recovers keyword candidates from a URL slug. Segments of
// two characters or fewer and a small filler-word set are dropped.
func ExtractFromSlug(slug string) []string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) <= 2 || slugStopWords[p] {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// CompetitionLevel classifies a keyword against the fixed primary and
// long-tail tables. Membership is exact and case-sensitive; callers pass
// canonical casing.
func CompetitionLevel(keyword string) Competition {
	switch {
	case longTailKeywords[keyword]:
		return Competition{
			Difficulty:     "Easy",
			Volume:         "Low",
			Recommendation: "Long-tail keyword: rank with a focused article and strong on-page optimization.",
		}
	case primaryKeywords[keyword]:
		return Competition{
			Difficulty:     "Hard",
			Volume:         "High",
			Recommendation: "Primary keyword: target it on pillar pages and support it with long-tail content.",
		}
	default:
		return Competition{
			Difficulty:     "Medium",
			Volume:         "Medium",
			Recommendation: "Mid-competition keyword: usable as a secondary target alongside a primary keyword.",
		}
	}
}

// Related returns the fixed semantic neighbours of a keyword, or an empty
// slice when the keyword has no entry.
func Related(keyword string) []string {
	terms, ok := semanticRelated[keyword]
	if !ok {
		return []string{}
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}
