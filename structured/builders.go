package structured

// OrganizationInput feeds NewOrganization.
type OrganizationInput struct {
	Name   string
	URL    string
	Logo   string
	SameAs []string
}

// NewOrganization builds a top-level Organization node.
func NewOrganization(in OrganizationInput) Organization {
	return Organization{
		Context: Context,
		Type:    "Organization",
		Name:    in.Name,
		URL:     in.URL,
		Logo:    in.Logo,
		SameAs:  in.SameAs,
	}
}

// ArticleInput feeds NewArticle. DateModified falls back to DatePublished
// when absent.
type ArticleInput struct {
	Headline      string
	Description   string
	Image         string
	DatePublished string
	DateModified  string
	AuthorName    string
	Publisher     OrganizationInput
	URL           string
}

// NewArticle builds an Article node with the publisher organization nested.
func NewArticle(in ArticleInput) Article {
	modified := in.DateModified
	if modified == "" {
		modified = in.DatePublished
	}
	publisher := NewOrganization(in.Publisher)
	publisher.Context = "" // nested nodes carry only @type
	return Article{
		Context:          Context,
		Type:             "Article",
		Headline:         in.Headline,
		Description:      in.Description,
		Image:            in.Image,
		DatePublished:    in.DatePublished,
		DateModified:     modified,
		Author:           Person{Type: "Person", Name: in.AuthorName},
		Publisher:        publisher,
		MainEntityOfPage: in.URL,
	}
}

// RatingInput is the optional review aggregate for a product.
type RatingInput struct {
	Value float64
	Count int
}

// SoftwareApplicationInput feeds NewSoftwareApplication.
type SoftwareApplicationInput struct {
	Name                string
	Description         string
	OperatingSystem     string
	ApplicationCategory string
	Price               string
	PriceCurrency       string
	Rating              *RatingInput
}

// NewSoftwareApplication builds a SoftwareApplication node. An
// AggregateRating is attached only when rating input is supplied, with the
// fixed 1-5 bounds.
func NewSoftwareApplication(in SoftwareApplicationInput) SoftwareApplication {
	app := SoftwareApplication{
		Context:             Context,
		Type:                "SoftwareApplication",
		Name:                in.Name,
		Description:         in.Description,
		OperatingSystem:     in.OperatingSystem,
		ApplicationCategory: in.ApplicationCategory,
	}
	if in.Price != "" {
		currency := in.PriceCurrency
		if currency == "" {
			currency = "USD"
		}
		app.Offers = &Offer{Type: "Offer", Price: in.Price, PriceCurrency: currency}
	}
	if in.Rating != nil {
		app.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: in.Rating.Value,
			RatingCount: in.Rating.Count,
			BestRating:  5,
			WorstRating: 1,
		}
	}
	return app
}

// QA is one FAQ entry.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewFAQPage builds a FAQPage node preserving input order.
func NewFAQPage(items []QA) FAQPage {
	questions := make([]Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           item.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: item.Answer},
		})
	}
	return FAQPage{Context: Context, Type: "FAQPage", MainEntity: questions}
}

// Crumb is one breadcrumb trail entry.
type Crumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewBreadcrumbList builds a BreadcrumbList node, assigning 1-based
// positions in input order.
func NewBreadcrumbList(crumbs []Crumb) BreadcrumbList {
	items := make([]ListItem, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     crumb.URL,
		})
	}
	return BreadcrumbList{Context: Context, Type: "BreadcrumbList", ItemListElement: items}
}

// WebSiteInput feeds NewWebSite. SearchURL, when set, should end where the
// query string begins, e.g. "https://example.com/search?q=".
type WebSiteInput struct {
	Name        string
	URL         string
	Description string
	SearchURL   string
}

// NewWebSite builds a WebSite node, with a SearchAction when the site
// exposes search.
func NewWebSite(in WebSiteInput) WebSite {
	site := WebSite{
		Context:     Context,
		Type:        "WebSite",
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
	}
	if in.SearchURL != "" {
		site.PotentialAction = &SearchAction{
			Type:       "SearchAction",
			Target:     in.SearchURL + "{search_term_string}",
			QueryInput: "required name=search_term_string",
		}
	}
	return site
}
