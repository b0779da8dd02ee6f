// Package scoring evaluates page content against fixed on-page SEO rules
// and produces a 0-100 score with itemized issues and suggestions.
package scoring

import (
	"strings"

	"github.com/tradeforge/seo-engine/keywords"
)

// Rule thresholds. Changing any of these changes behavior visible to
// content editors.
const (
	titleMinLength = 30
	titleMaxLength = 60
	descMinLength  = 120
	descMaxLength  = 160
	bodyMinWords   = 300
)

// Content is the page material under evaluation.
type Content struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Keyword     string `json:"keyword"`
	Slug        string `json:"slug,omitempty"`
}

// Result is the outcome of scoring one content record.
type Result struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Score applies the deduction table in fixed order, starting from 100 and
// flooring at 0. Every rule is evaluated independently; deductions are
// cumulative.
func Score(c Content) Result {
	score := 100
	issues := []string{}
	suggestions := []string{}

	if len(c.Title) < titleMinLength {
		score -= 10
		issues = append(issues, "Title too short (under 30 characters)")
		suggestions = append(suggestions, "Expand the title to 30-60 characters")
	}
	if len(c.Title) > titleMaxLength {
		score -= 10
		issues = append(issues, "Title too long (over 60 characters)")
		suggestions = append(suggestions, "Shorten the title to 60 characters or fewer")
	}
	if !containsKeyword(c.Title, c.Keyword) {
		score -= 15
		issues = append(issues, "Keyword not in title")
		suggestions = append(suggestions, "Include the target keyword in the title")
	}

	if len(c.Description) < descMinLength {
		score -= 10
		issues = append(issues, "Description too short (under 120 characters)")
		suggestions = append(suggestions, "Expand the description to 120-160 characters")
	}
	if len(c.Description) > descMaxLength {
		score -= 10
		issues = append(issues, "Description too long (over 160 characters)")
		suggestions = append(suggestions, "Shorten the description to 160 characters or fewer")
	}
	if !containsKeyword(c.Description, c.Keyword) {
		score -= 10
		issues = append(issues, "Keyword not in description")
		suggestions = append(suggestions, "Include the target keyword in the description")
	}

	if len(strings.Fields(c.Body)) < bodyMinWords {
		score -= 15
		issues = append(issues, "Content too short (under 300 words)")
		suggestions = append(suggestions, "Add more content, aim for at least 300 words")
	}

	density := keywords.Density(c.Body, c.Keyword)
	if density < keywords.OptimalDensityMin {
		score -= 10
		issues = append(issues, "Keyword density too low")
		suggestions = append(suggestions, "Add more mentions of the keyword in the body")
	}
	if density > keywords.OptimalDensityMax {
		score -= 15
		issues = append(issues, "Keyword density too high")
		suggestions = append(suggestions, "Reduce stuffing: remove some keyword mentions")
	}

	if score < 0 {
		score = 0
	}

	switch {
	case score >= 90:
		suggestions = append(suggestions, "Content is well optimized")
	case score >= 70:
		suggestions = append(suggestions, "Minor improvements will push the score higher")
	default:
		suggestions = append(suggestions, "Review best practices for on-page SEO")
	}

	return Result{Score: score, Issues: issues, Suggestions: suggestions}
}

func containsKeyword(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(keyword))
}
