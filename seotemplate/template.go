// Package seotemplate renders page titles and meta descriptions from named
// templates with {variable} substitution, enforcing the length ceilings
// search engines display.
package seotemplate

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"
)

const (
	titleMaxLength = 60
	descMaxLength  = 160
	descMinLength  = 150

	// Appended to descriptions that come up short of the display band.
	ctaSuffix = " Start trading smarter today."
)

// Definition is a named pattern with its length bounds. Definitions are
// process-wide configuration, defined once below and never mutated.
type Definition struct {
	Name      string
	Pattern   string
	MaxLength int
	MinLength int
}

var titleTemplates = map[string]Definition{
	"product": {
		Name:      "product",
		Pattern:   "{name} - {category} for {platform} | {site}",
		MaxLength: titleMaxLength,
	},
	"article": {
		Name:      "article",
		Pattern:   "{title} | {site} Blog",
		MaxLength: titleMaxLength,
	},
	"category": {
		Name:      "category",
		Pattern:   "{category} for MetaTrader - Free & Premium | {site}",
		MaxLength: titleMaxLength,
	},
	"home": {
		Name:      "home",
		Pattern:   "{site} - Trading Tools, Expert Advisors & Indicators",
		MaxLength: titleMaxLength,
	},
}

var descriptionTemplates = map[string]Definition{
	"product": {
		Name:      "product",
		Pattern:   "Download {name}, a {category} for {platform}. {summary}",
		MaxLength: descMaxLength,
		MinLength: descMinLength,
	},
	"article": {
		Name:      "article",
		Pattern:   "{summary} Read the full guide on {site}.",
		MaxLength: descMaxLength,
		MinLength: descMinLength,
	},
	"category": {
		Name:      "category",
		Pattern:   "Browse {count} {category} for {platform}. Verified backtests, reviews and instant downloads on {site}.",
		MaxLength: descMaxLength,
		MinLength: descMinLength,
	},
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// substitute replaces each {key} with vars[key]. Placeholders with no
// matching variable stay literal so upstream data-entry gaps surface in
// the rendered output instead of silently disappearing.
func substitute(pattern string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		if val, ok := vars[m[1:len(m)-1]]; ok {
			return val
		}
		return m
	})
}

// RenderTitle renders the named title template and enforces the 60
// character ceiling with ellipsis truncation.
func RenderTitle(name string, vars map[string]string) (string, error) {
	def, ok := titleTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown title template %q", name)
	}
	out := substitute(def.Pattern, vars)
	if len(out) > def.MaxLength {
		out = truncate(out, def.MaxLength)
	}
	return out, nil
}

// RenderDescription renders the named description template. Output longer
// than 160 characters is truncated with an ellipsis; output shorter than
// 150 gets the call-to-action suffix appended. The suffix is added after
// the ceiling check and can push the result back over 160, matching the
// behavior the CMS shipped with.
func RenderDescription(name string, vars map[string]string) (string, error) {
	def, ok := descriptionTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown description template %q", name)
	}
	out := substitute(def.Pattern, vars)
	if len(out) > def.MaxLength {
		out = truncate(out, def.MaxLength)
	}
	if len(out) < def.MinLength {
		out += ctaSuffix
	}
	return out, nil
}

// truncate cuts s to at most max bytes including the ellipsis, backing off
// to a rune boundary so multi-byte characters are never split.
func truncate(s string, max int) string {
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// TitleTemplateNames lists the available title templates, sorted.
func TitleTemplateNames() []string {
	return sortedKeys(titleTemplates)
}

// DescriptionTemplateNames lists the available description templates, sorted.
func DescriptionTemplateNames() []string {
	return sortedKeys(descriptionTemplates)
}

func sortedKeys(defs map[string]Definition) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
