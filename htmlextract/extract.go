// Package htmlextract pulls scorable content out of rendered HTML so stored
// page markup can be fed to the scorer without a crawler.
package htmlextract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tradeforge/seo-engine/scoring"
)

// Extract reads an HTML document and returns its title, meta description,
// first meta keyword and collapsed body text as a content record.
func Extract(r io.Reader) (scoring.Content, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return scoring.Content{}, fmt.Errorf("parse html: %w", err)
	}

	var c scoring.Content
	c.Title = strings.TrimSpace(doc.Find("title").First().Text())
	c.Description, _ = doc.Find("meta[name='description']").Attr("content")

	if kw, ok := doc.Find("meta[name='keywords']").Attr("content"); ok {
		if first, _, _ := strings.Cut(kw, ","); first != "" {
			c.Keyword = strings.TrimSpace(first)
		}
	}

	// Collapse whitespace runs so word counts match rendered text.
	c.Body = strings.Join(strings.Fields(doc.Find("body").Text()), " ")

	return c, nil
}
