package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensity(t *testing.T) {
	// 4 tokens, 2 matches.
	assert.Equal(t, 50.0, Density("the quick quick fox", "quick"))

	assert.Equal(t, 0.0, Density("no match here", "forex"))
	assert.Equal(t, 0.0, Density("", "forex"))
	assert.Equal(t, 0.0, Density("some text", ""))
}

func TestDensityCaseInsensitive(t *testing.T) {
	text := "MT4 robots and mt4 indicators"
	assert.Equal(t, Density(text, "MT4"), Density(text, "mt4"))
	assert.Equal(t, 40.0, Density(text, "mt4"))
}

func TestDensityMultiWordKeyword(t *testing.T) {
	// "expert advisor" matches as a run of consecutive tokens.
	text := "this expert advisor is the best expert advisor"
	assert.Equal(t, 25.0, Density(text, "expert advisor"))

	// Words present but never adjacent do not match.
	assert.Equal(t, 0.0, Density("expert trading advisor", "expert advisor"))
}

func TestDensityBounds(t *testing.T) {
	texts := []string{"forex", "forex forex forex", "a b c forex", ""}
	for _, text := range texts {
		d := Density(text, "forex")
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 100.0)
	}
}

func TestMultiDensity(t *testing.T) {
	text := "forex trading with forex robots"
	out := MultiDensity(text, []string{"forex", "robots"})
	assert.Equal(t, 40.0, out["forex"])
	assert.Equal(t, 20.0, out["robots"])
}

func TestMultiDensityDuplicatesCollapse(t *testing.T) {
	out := MultiDensity("forex forex trading", []string{"Forex", "FOREX", "forex"})
	assert.Len(t, out, 1)
	assert.InDelta(t, 66.67, out["forex"], 0.001)
}

func TestIsDensityOptimal(t *testing.T) {
	assert.False(t, IsDensityOptimal(0.99))
	assert.True(t, IsDensityOptimal(1.0))
	assert.True(t, IsDensityOptimal(3.0))
	assert.False(t, IsDensityOptimal(3.01))
}

func TestCheckStuffing(t *testing.T) {
	report := CheckStuffing("forex forex forex trading", "forex")
	assert.True(t, report.Stuffed)
	assert.Equal(t, 75.0, report.Density)

	clean := CheckStuffing(strings.Repeat("pip ", 97)+"forex pip pip", "forex")
	assert.False(t, clean.Stuffed)
}

func TestExtractKeywords(t *testing.T) {
	// "the" is a stop word and cat/sat/mat are three characters, below the
	// length threshold, so nothing survives.
	assert.Empty(t, ExtractKeywords("The the the cat cat sat mat", 2))
}

func TestExtractKeywordsLengthBoundary(t *testing.T) {
	// Exactly four characters passes; three does not.
	out := ExtractKeywords("pips pips fee fee fee", 10)
	assert.Equal(t, []string{"pips"}, out)
}

func TestExtractKeywordsOrdering(t *testing.T) {
	text := "robot robot scalper scalper scalper grid hedge hedge"
	out := ExtractKeywords(text, 3)
	assert.Equal(t, []string{"scalper", "robot", "hedge"}, out)

	// Ties broken by first occurrence.
	tied := ExtractKeywords("alpha beta alpha beta gamma gamma", 10)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, tied)
}

func TestExtractKeywordsDefaultLimit(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	text := strings.Join(words, " ")
	assert.Len(t, ExtractKeywords(text, 0), DefaultExtractLimit)
}

func TestExtractFromSlug(t *testing.T) {
	out := ExtractFromSlug("best-forex-ea-for-beginners")
	// "ea" is two characters, "for" is a filler word.
	assert.Equal(t, []string{"best", "forex", "beginners"}, out)

	assert.Equal(t, []string{"grid", "trading", "robot"}, ExtractFromSlug("grid_trading_robot"))
	assert.Empty(t, ExtractFromSlug(""))
}

func TestCompetitionLevel(t *testing.T) {
	primary := CompetitionLevel("MQL5")
	assert.Equal(t, "Hard", primary.Difficulty)
	assert.Equal(t, "High", primary.Volume)
	assert.NotEmpty(t, primary.Recommendation)

	longTail := CompetitionLevel("best forex ea for beginners")
	assert.Equal(t, "Easy", longTail.Difficulty)
	assert.Equal(t, "Low", longTail.Volume)

	other := CompetitionLevel("unknown phrase")
	assert.Equal(t, "Medium", other.Difficulty)
	assert.Equal(t, "Medium", other.Volume)
}

func TestCompetitionLevelCaseSensitive(t *testing.T) {
	// Membership is exact: lower-cased product names miss the primary list.
	assert.Equal(t, "Medium", CompetitionLevel("mql5").Difficulty)
}

func TestRelated(t *testing.T) {
	assert.NotEmpty(t, Related("MT4"))

	miss := Related("nonexistent keyword")
	assert.NotNil(t, miss)
	assert.Empty(t, miss)
}

func TestRelatedReturnsCopy(t *testing.T) {
	first := Related("forex")
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", Related("forex")[0])
}
