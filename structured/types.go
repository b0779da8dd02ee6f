// Package structured builds schema.org JSON-LD nodes for the entity types
// the site publishes. Nodes are plain structs with declaration-ordered
// JSON tags, so serialization is byte-stable across runs.
package structured

// Context is the vocabulary every top-level node declares.
const Context = "https://schema.org"

// Node is any schema.org entity the builders produce.
type Node interface {
	SchemaType() string
}

// Organization identifies the publisher.
type Organization struct {
	Context string   `json:"@context,omitempty"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Logo    string   `json:"logo,omitempty"`
	SameAs  []string `json:"sameAs,omitempty"`
}

func (Organization) SchemaType() string { return "Organization" }

// Person is only ever nested (article author), so it carries no context.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Article describes a blog post.
type Article struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description,omitempty"`
	Image            string       `json:"image,omitempty"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	Author           Person       `json:"author"`
	Publisher        Organization `json:"publisher"`
	MainEntityOfPage string       `json:"mainEntityOfPage,omitempty"`
}

func (Article) SchemaType() string { return "Article" }

// Offer is nested inside SoftwareApplication.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// AggregateRating is nested inside SoftwareApplication when review data
// exists. Rating bounds are fixed at 1-5.
type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	RatingCount int     `json:"ratingCount"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

// SoftwareApplication describes a downloadable trading tool.
type SoftwareApplication struct {
	Context             string           `json:"@context"`
	Type                string           `json:"@type"`
	Name                string           `json:"name"`
	Description         string           `json:"description,omitempty"`
	OperatingSystem     string           `json:"operatingSystem,omitempty"`
	ApplicationCategory string           `json:"applicationCategory,omitempty"`
	Offers              *Offer           `json:"offers,omitempty"`
	AggregateRating     *AggregateRating `json:"aggregateRating,omitempty"`
}

func (SoftwareApplication) SchemaType() string { return "SoftwareApplication" }

// Answer is nested inside Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Question is nested inside FAQPage.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// FAQPage lists question/answer pairs.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

func (FAQPage) SchemaType() string { return "FAQPage" }

// ListItem is nested inside BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// BreadcrumbList marks up the page's navigation trail.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (BreadcrumbList) SchemaType() string { return "BreadcrumbList" }

// SearchAction is nested inside WebSite when the site exposes search.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// WebSite describes the site itself.
type WebSite struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	Name            string        `json:"name"`
	URL             string        `json:"url"`
	Description     string        `json:"description,omitempty"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

func (WebSite) SchemaType() string { return "WebSite" }

// Custom carries caller-supplied structured data that has no typed builder.
// It marshals as-is; keys sort alphabetically under encoding/json.
type Custom map[string]any

func (c Custom) SchemaType() string {
	if t, ok := c["@type"].(string); ok {
		return t
	}
	return ""
}
