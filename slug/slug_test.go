package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var validSlug = regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"  Hello, World! 2024  ":       "hello-world-2024",
		"Grid Trading EA v2.1":         "grid-trading-ea-v21",
		"snake_case_name":              "snake-case-name",
		"--already--hyphenated--":      "already-hyphenated",
		"MT5   Scalper!!!":             "mt5-scalper",
		"":                             "",
		"!!!":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), "input %q", in)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"  Hello, World! 2024  ",
		"Best Forex EA for Beginners",
		"under_score and-hyphen",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}

func TestMakeCharset(t *testing.T) {
	inputs := []string{
		"Ça va? Très bien!",
		"100% Win Rate (not really)",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		out := Make(in)
		assert.Regexp(t, validSlug, out, "input %q", in)
	}
}
