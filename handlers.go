package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradeforge/seo-engine/config"
	"github.com/tradeforge/seo-engine/htmlextract"
	"github.com/tradeforge/seo-engine/keywords"
	"github.com/tradeforge/seo-engine/meta"
	"github.com/tradeforge/seo-engine/scoring"
	"github.com/tradeforge/seo-engine/seotemplate"
	"github.com/tradeforge/seo-engine/slug"
	"github.com/tradeforge/seo-engine/stats"
	"github.com/tradeforge/seo-engine/structured"
	"github.com/tradeforge/seo-engine/telemetry"
)

type server struct {
	cfg       config.Config
	logger    *zap.Logger
	usage     *stats.Storage
	metrics   *telemetry.Metrics
	assembler *meta.Assembler
}

// observe records request metrics; call via defer at handler entry.
func (s *server) observe(operation string, c *gin.Context, start time.Time) {
	s.metrics.ObserveRequest(operation, strconv.Itoa(c.Writer.Status()), time.Since(start))
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *server) scoreContent(c *gin.Context) {
	defer s.observe("score", c, time.Now())

	var content scoring.Content
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content payload"})
		return
	}

	s.usage.Record(stats.KindScore)

	result := scoring.Score(content)
	s.metrics.ObserveScore(result.Score)

	c.JSON(http.StatusOK, result)
}

type auditRequest struct {
	HTML    string `json:"html" binding:"required"`
	Keyword string `json:"keyword"`
}

func (s *server) auditHTML(c *gin.Context) {
	defer s.observe("audit", c, time.Now())

	var req auditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audit payload"})
		return
	}

	s.usage.Record(stats.KindAudit)

	content, err := htmlextract.Extract(strings.NewReader(req.HTML))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to parse HTML: " + err.Error()})
		return
	}
	if req.Keyword != "" {
		content.Keyword = req.Keyword
	}

	result := scoring.Score(content)
	s.metrics.ObserveScore(result.Score)

	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"result":  result,
	})
}

type densityRequest struct {
	Text     string   `json:"text" binding:"required"`
	Keywords []string `json:"keywords" binding:"required"`
}

type densityResponse struct {
	Densities map[string]float64 `json:"densities"`
	Optimal   map[string]bool    `json:"optimal"`
	Stuffed   map[string]bool    `json:"stuffed"`
}

func (s *server) analyzeDensity(c *gin.Context) {
	defer s.observe("density", c, time.Now())

	var req densityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid density payload"})
		return
	}

	s.usage.Record(stats.KindDensity)

	densities := keywords.MultiDensity(req.Text, req.Keywords)
	resp := densityResponse{
		Densities: densities,
		Optimal:   make(map[string]bool, len(densities)),
		Stuffed:   make(map[string]bool, len(densities)),
	}
	for kw, d := range densities {
		resp.Optimal[kw] = keywords.IsDensityOptimal(d)
		resp.Stuffed[kw] = keywords.CheckStuffing(req.Text, kw).Stuffed
	}

	c.JSON(http.StatusOK, resp)
}

type extractRequest struct {
	Text  string `json:"text"`
	Slug  string `json:"slug"`
	Limit int    `json:"limit"`
}

func (s *server) extractKeywords(c *gin.Context) {
	defer s.observe("keywords_extract", c, time.Now())

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extract payload"})
		return
	}

	s.usage.Record(stats.KindKeywords)

	resp := gin.H{"keywords": keywords.ExtractKeywords(req.Text, req.Limit)}
	if req.Slug != "" {
		resp["slugKeywords"] = keywords.ExtractFromSlug(req.Slug)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *server) keywordCompetition(c *gin.Context) {
	defer s.observe("keywords_competition", c, time.Now())

	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing keyword parameter"})
		return
	}

	s.usage.Record(stats.KindKeywords)

	c.JSON(http.StatusOK, keywords.CompetitionLevel(keyword))
}

func (s *server) relatedKeywords(c *gin.Context) {
	defer s.observe("keywords_related", c, time.Now())

	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing keyword parameter"})
		return
	}

	s.usage.Record(stats.KindKeywords)

	c.JSON(http.StatusOK, gin.H{"related": keywords.Related(keyword)})
}

type slugRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *server) makeSlug(c *gin.Context) {
	defer s.observe("slug", c, time.Now())

	var req slugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slug": slug.Make(req.Text)})
}

func (s *server) listTemplates(c *gin.Context) {
	defer s.observe("templates", c, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"titles":       seotemplate.TitleTemplateNames(),
		"descriptions": seotemplate.DescriptionTemplateNames(),
	})
}

type renderRequest struct {
	Kind string            `json:"kind" binding:"required,oneof=title description"`
	Name string            `json:"name" binding:"required"`
	Vars map[string]string `json:"vars"`
}

func (s *server) renderTemplate(c *gin.Context) {
	defer s.observe("templates_render", c, time.Now())

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid render payload"})
		return
	}

	var (
		rendered string
		err      error
	)
	if req.Kind == "title" {
		rendered, err = seotemplate.RenderTitle(req.Name, req.Vars)
	} else {
		rendered, err = seotemplate.RenderDescription(req.Name, req.Vars)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendered": rendered, "length": len(rendered)})
}

type articleRequest struct {
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	DatePublished string `json:"datePublished"`
	DateModified  string `json:"dateModified"`
	Author        string `json:"author"`
}

type ratingRequest struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

type applicationRequest struct {
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	OperatingSystem     string         `json:"operatingSystem"`
	ApplicationCategory string         `json:"applicationCategory"`
	Price               string         `json:"price"`
	PriceCurrency       string         `json:"priceCurrency"`
	Rating              *ratingRequest `json:"rating"`
}

type breadcrumbRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type metaRequest struct {
	Path        string `json:"path"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Robots      string `json:"robots"`
	OGType      string `json:"ogType"`

	Article     *articleRequest     `json:"article"`
	Application *applicationRequest `json:"application"`
	FAQ         []structured.QA     `json:"faq"`
	Breadcrumbs []breadcrumbRequest `json:"breadcrumbs"`
	Custom      map[string]any      `json:"custom"`
}

func (s *server) buildMeta(c *gin.Context) {
	defer s.observe("meta", c, time.Now())

	var req metaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meta payload"})
		return
	}

	s.usage.Record(stats.KindMeta)

	page := meta.Page{
		Path:        req.Path,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Robots:      req.Robots,
		OGType:      req.OGType,
		FAQ:         req.FAQ,
	}
	if req.Article != nil {
		page.Article = &structured.ArticleInput{
			Headline:      req.Article.Headline,
			Description:   req.Article.Description,
			Image:         req.Article.Image,
			DatePublished: req.Article.DatePublished,
			DateModified:  req.Article.DateModified,
			AuthorName:    req.Article.Author,
		}
	}
	if req.Application != nil {
		app := &structured.SoftwareApplicationInput{
			Name:                req.Application.Name,
			Description:         req.Application.Description,
			OperatingSystem:     req.Application.OperatingSystem,
			ApplicationCategory: req.Application.ApplicationCategory,
			Price:               req.Application.Price,
			PriceCurrency:       req.Application.PriceCurrency,
		}
		if req.Application.Rating != nil {
			app.Rating = &structured.RatingInput{
				Value: req.Application.Rating.Value,
				Count: req.Application.Rating.Count,
			}
		}
		page.Application = app
	}
	for _, crumb := range req.Breadcrumbs {
		page.Breadcrumbs = append(page.Breadcrumbs, structured.Crumb{Name: crumb.Name, URL: crumb.URL})
	}
	if req.Custom != nil {
		page.Custom = structured.Custom(req.Custom)
	}

	bundle, err := s.assembler.Assemble(page)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to assemble meta tags: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"canonical": bundle.Canonical,
		"tags":      bundle.Tags,
		"rendered":  bundle.Render(),
	})
}

func (s *server) statistics(c *gin.Context) {
	defer s.observe("statistics", c, time.Now())

	resp := gin.H{
		"current": s.usage.CurrentStats(),
		"months":  s.usage.Months(),
	}

	// Full per-month breakdown only in development mode.
	if s.cfg.DevMode {
		byMonth := make(map[string]stats.MonthlyStats)
		for _, month := range s.usage.Months() {
			if monthly, ok := s.usage.MonthStats(month); ok {
				byMonth[month] = monthly
			}
		}
		resp["byMonth"] = byMonth
	}

	c.JSON(http.StatusOK, resp)
}
