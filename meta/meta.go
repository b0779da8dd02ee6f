// Package meta assembles the full head-tag bundle for a page: title,
// description, canonical URL, robots, Open Graph and Twitter blocks, and
// the JSON-LD scripts built by package structured. Output ordering is
// deterministic.
package meta

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/tradeforge/seo-engine/structured"
)

// Config is the site-wide metadata every page shares. It is read-only
// after construction.
type Config struct {
	Origin       string   // scheme+host, e.g. "https://tradeforge.io"
	SiteName     string
	Description  string   // default site description for the WebSite node
	LogoURL      string
	DefaultImage string
	TwitterSite  string   // "@handle", optional
	SearchURL    string   // search endpoint up to the query value, optional
	SameAs       []string // social profile URLs for the Organization node
}

// Assembler builds tag bundles against one site configuration.
type Assembler struct {
	cfg Config
}

// New returns an Assembler for the given site. A trailing slash on the
// origin is dropped so canonical URLs join cleanly.
func New(cfg Config) *Assembler {
	cfg.Origin = strings.TrimSuffix(cfg.Origin, "/")
	return &Assembler{cfg: cfg}
}

// Canonicalize turns a request path into the page's canonical URL: query
// string and fragment are stripped, the trailing slash removed, and the
// site origin prefixed. The site root canonicalizes to the bare origin.
func (a *Assembler) Canonicalize(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.cfg.Origin + path
}

// Page is the per-page input to Assemble. Entity-specific fields are
// optional; each present one contributes its JSON-LD node.
type Page struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Robots      string `json:"robots,omitempty"`
	OGType      string `json:"ogType,omitempty"`

	Article     *structured.ArticleInput             `json:"-"`
	Application *structured.SoftwareApplicationInput `json:"-"`
	FAQ         []structured.QA                      `json:"-"`
	Breadcrumbs []structured.Crumb                   `json:"-"`
	Custom      structured.Custom                    `json:"-"`
}

// Tag is one head element. Kind selects the element; Attr and Key name the
// identifying attribute for meta and link tags.
type Tag struct {
	Kind    string `json:"kind"` // title, meta, link, script
	Attr    string `json:"attr,omitempty"`
	Key     string `json:"key,omitempty"`
	Content string `json:"content"`
}

// Render serializes the tag as an HTML fragment. Script content is JSON-LD
// and emitted verbatim; everything else is escaped.
func (t Tag) Render() string {
	switch t.Kind {
	case "title":
		return "<title>" + html.EscapeString(t.Content) + "</title>"
	case "meta":
		return fmt.Sprintf(`<meta %s="%s" content="%s">`, t.Attr, t.Key, html.EscapeString(t.Content))
	case "link":
		return fmt.Sprintf(`<link %s="%s" href="%s">`, t.Attr, t.Key, html.EscapeString(t.Content))
	case "script":
		return `<script type="application/ld+json">` + t.Content + `</script>`
	default:
		return ""
	}
}

// Bundle is the ordered head-tag set for one page.
type Bundle struct {
	Canonical string `json:"canonical"`
	Tags      []Tag  `json:"tags"`
}

// Render returns the ordered HTML fragments for injection into a head.
func (b Bundle) Render() []string {
	out := make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		out = append(out, tag.Render())
	}
	return out
}

// String joins the rendered fragments with newlines.
func (b Bundle) String() string {
	return strings.Join(b.Render(), "\n")
}

func (a *Assembler) isRoot(path string) bool {
	return path == "" || path == "/"
}

// Assemble builds the complete ordered bundle for a page. The WebSite node
// is always present; the Organization node only on the site root; entity
// nodes follow in a fixed order when their inputs are present; a
// caller-supplied custom node always comes last.
func (a *Assembler) Assemble(p Page) (Bundle, error) {
	canonical := a.Canonicalize(p.Path)

	robots := p.Robots
	if robots == "" {
		robots = "index, follow"
	}
	ogType := p.OGType
	if ogType == "" {
		ogType = "website"
	}
	image := p.Image
	if image == "" {
		image = a.cfg.DefaultImage
	}

	tags := []Tag{
		{Kind: "title", Content: p.Title},
		{Kind: "meta", Attr: "name", Key: "description", Content: p.Description},
		{Kind: "link", Attr: "rel", Key: "canonical", Content: canonical},
		{Kind: "meta", Attr: "name", Key: "robots", Content: robots},

		{Kind: "meta", Attr: "property", Key: "og:type", Content: ogType},
		{Kind: "meta", Attr: "property", Key: "og:title", Content: p.Title},
		{Kind: "meta", Attr: "property", Key: "og:description", Content: p.Description},
		{Kind: "meta", Attr: "property", Key: "og:url", Content: canonical},
		{Kind: "meta", Attr: "property", Key: "og:image", Content: image},
		{Kind: "meta", Attr: "property", Key: "og:site_name", Content: a.cfg.SiteName},

		{Kind: "meta", Attr: "name", Key: "twitter:card", Content: "summary_large_image"},
	}
	if a.cfg.TwitterSite != "" {
		tags = append(tags, Tag{Kind: "meta", Attr: "name", Key: "twitter:site", Content: a.cfg.TwitterSite})
	}
	tags = append(tags,
		Tag{Kind: "meta", Attr: "name", Key: "twitter:title", Content: p.Title},
		Tag{Kind: "meta", Attr: "name", Key: "twitter:description", Content: p.Description},
		Tag{Kind: "meta", Attr: "name", Key: "twitter:image", Content: image},
	)

	for _, node := range a.nodes(p, canonical) {
		data, err := json.Marshal(node)
		if err != nil {
			return Bundle{}, fmt.Errorf("marshal %s node: %w", node.SchemaType(), err)
		}
		tags = append(tags, Tag{Kind: "script", Content: string(data)})
	}

	return Bundle{Canonical: canonical, Tags: tags}, nil
}

func (a *Assembler) nodes(p Page, canonical string) []structured.Node {
	nodes := []structured.Node{
		structured.NewWebSite(structured.WebSiteInput{
			Name:        a.cfg.SiteName,
			URL:         a.cfg.Origin,
			Description: a.cfg.Description,
			SearchURL:   a.cfg.SearchURL,
		}),
	}
	if a.isRoot(p.Path) {
		nodes = append(nodes, structured.NewOrganization(a.organizationInput()))
	}
	if p.Article != nil {
		article := *p.Article
		if article.Publisher.Name == "" {
			article.Publisher = a.organizationInput()
		}
		if article.URL == "" {
			article.URL = canonical
		}
		nodes = append(nodes, structured.NewArticle(article))
	}
	if p.Application != nil {
		nodes = append(nodes, structured.NewSoftwareApplication(*p.Application))
	}
	if len(p.FAQ) > 0 {
		nodes = append(nodes, structured.NewFAQPage(p.FAQ))
	}
	if len(p.Breadcrumbs) > 0 {
		nodes = append(nodes, structured.NewBreadcrumbList(p.Breadcrumbs))
	}
	if p.Custom != nil {
		nodes = append(nodes, p.Custom)
	}
	return nodes
}

func (a *Assembler) organizationInput() structured.OrganizationInput {
	return structured.OrganizationInput{
		Name:   a.cfg.SiteName,
		URL:    a.cfg.Origin,
		Logo:   a.cfg.LogoURL,
		SameAs: a.cfg.SameAs,
	}
}
