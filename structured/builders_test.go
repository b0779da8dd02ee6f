package structured

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, node Node) string {
	t.Helper()
	data, err := json.Marshal(node)
	require.NoError(t, err)
	return string(data)
}

func TestNewOrganization(t *testing.T) {
	org := NewOrganization(OrganizationInput{
		Name: "TradeForge",
		URL:  "https://tradeforge.io",
		Logo: "https://tradeforge.io/logo.png",
	})

	assert.Equal(t, "Organization", org.SchemaType())
	assert.Equal(t,
		`{"@context":"https://schema.org","@type":"Organization","name":"TradeForge","url":"https://tradeforge.io","logo":"https://tradeforge.io/logo.png"}`,
		marshal(t, org))
}

func TestNewArticle(t *testing.T) {
	article := NewArticle(ArticleInput{
		Headline:      "Grid Trading Explained",
		DatePublished: "2024-03-01",
		AuthorName:    "J. Doe",
		Publisher:     OrganizationInput{Name: "TradeForge", URL: "https://tradeforge.io"},
		URL:           "https://tradeforge.io/blog/grid-trading",
	})

	// dateModified falls back to datePublished.
	assert.Equal(t, "2024-03-01", article.DateModified)
	assert.Equal(t, "Person", article.Author.Type)
	assert.Equal(t, "J. Doe", article.Author.Name)

	// Nested publisher drops the context but keeps its type.
	assert.Empty(t, article.Publisher.Context)
	assert.Equal(t, "Organization", article.Publisher.Type)

	modified := NewArticle(ArticleInput{
		Headline:      "Updated Post",
		DatePublished: "2024-03-01",
		DateModified:  "2024-04-15",
	})
	assert.Equal(t, "2024-04-15", modified.DateModified)
}

func TestNewSoftwareApplicationRating(t *testing.T) {
	withRating := NewSoftwareApplication(SoftwareApplicationInput{
		Name:   "GridMaster EA",
		Price:  "149",
		Rating: &RatingInput{Value: 4.6, Count: 212},
	})
	require.NotNil(t, withRating.AggregateRating)
	assert.Equal(t, 5, withRating.AggregateRating.BestRating)
	assert.Equal(t, 1, withRating.AggregateRating.WorstRating)
	assert.Equal(t, 4.6, withRating.AggregateRating.RatingValue)
	assert.Equal(t, 212, withRating.AggregateRating.RatingCount)

	withoutRating := NewSoftwareApplication(SoftwareApplicationInput{Name: "GridMaster EA"})
	assert.Nil(t, withoutRating.AggregateRating)
	assert.NotContains(t, marshal(t, withoutRating), "aggregateRating")
}

func TestNewSoftwareApplicationOffer(t *testing.T) {
	app := NewSoftwareApplication(SoftwareApplicationInput{Name: "Free Indicator"})
	assert.Nil(t, app.Offers)

	paid := NewSoftwareApplication(SoftwareApplicationInput{Name: "Pro EA", Price: "99"})
	require.NotNil(t, paid.Offers)
	assert.Equal(t, "Offer", paid.Offers.Type)
	assert.Equal(t, "USD", paid.Offers.PriceCurrency)
}

func TestNewFAQPage(t *testing.T) {
	page := NewFAQPage([]QA{
		{Question: "Does it work on MT5?", Answer: "Yes, MT4 and MT5."},
		{Question: "Is there a refund?", Answer: "30 days."},
	})

	require.Len(t, page.MainEntity, 2)
	assert.Equal(t, "Question", page.MainEntity[0].Type)
	assert.Equal(t, "Does it work on MT5?", page.MainEntity[0].Name)
	assert.Equal(t, "Answer", page.MainEntity[0].AcceptedAnswer.Type)
	assert.Equal(t, "30 days.", page.MainEntity[1].AcceptedAnswer.Text)
}

func TestNewBreadcrumbListPositions(t *testing.T) {
	list := NewBreadcrumbList([]Crumb{
		{Name: "Home", URL: "https://tradeforge.io"},
		{Name: "Expert Advisors", URL: "https://tradeforge.io/ea"},
		{Name: "GridMaster"},
	})

	require.Len(t, list.ItemListElement, 3)
	for i, item := range list.ItemListElement {
		assert.Equal(t, i+1, item.Position)
		assert.Equal(t, "ListItem", item.Type)
	}
	// The last crumb has no URL and marshals without "item".
	assert.NotContains(t, marshal(t, list), `"item":""`)
}

func TestNewWebSite(t *testing.T) {
	plain := NewWebSite(WebSiteInput{Name: "TradeForge", URL: "https://tradeforge.io"})
	assert.Nil(t, plain.PotentialAction)

	searchable := NewWebSite(WebSiteInput{
		Name:      "TradeForge",
		URL:       "https://tradeforge.io",
		SearchURL: "https://tradeforge.io/search?q=",
	})
	require.NotNil(t, searchable.PotentialAction)
	assert.Equal(t, "https://tradeforge.io/search?q={search_term_string}", searchable.PotentialAction.Target)
	assert.Equal(t, "required name=search_term_string", searchable.PotentialAction.QueryInput)
}

func TestCustomNode(t *testing.T) {
	custom := Custom{"@context": Context, "@type": "VideoObject", "name": "Backtest walkthrough"}
	assert.Equal(t, "VideoObject", custom.SchemaType())

	assert.Empty(t, Custom{"name": "untyped"}.SchemaType())
}

func TestMarshalStability(t *testing.T) {
	article := NewArticle(ArticleInput{
		Headline:      "Stable Output",
		DatePublished: "2024-01-01",
		AuthorName:    "A",
		Publisher:     OrganizationInput{Name: "TradeForge", URL: "https://tradeforge.io"},
	})
	assert.Equal(t, marshal(t, article), marshal(t, article))
}
