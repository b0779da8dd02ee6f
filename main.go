package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tradeforge/seo-engine/config"
	"github.com/tradeforge/seo-engine/logging"
	"github.com/tradeforge/seo-engine/meta"
	"github.com/tradeforge/seo-engine/middleware"
	"github.com/tradeforge/seo-engine/stats"
	"github.com/tradeforge/seo-engine/telemetry"
)

func loadEnv() {
	// Try .env.development first (local development), then regular .env.
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode(mode string) {
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()

	cfg := config.Load()
	setupGinMode(cfg.GinMode)

	logger := logging.Must(cfg.LogLevel, cfg.DevMode)
	defer logger.Sync()

	usage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to initialize stats storage", zap.Error(err))
	}
	defer usage.Shutdown()

	srv := &server{
		cfg:     cfg,
		logger:  logger,
		usage:   usage,
		metrics: telemetry.New(),
		assembler: meta.New(meta.Config{
			Origin:       cfg.SiteOrigin,
			SiteName:     cfg.SiteName,
			Description:  cfg.SiteTagline,
			LogoURL:      cfg.SiteLogoURL,
			DefaultImage: cfg.DefaultImage,
			TwitterSite:  cfg.TwitterSite,
			SearchURL:    cfg.SearchURL,
			SameAs:       cfg.SameAs,
		}),
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", srv.health)

		api.POST("/score", srv.scoreContent)
		api.POST("/audit", srv.auditHTML)

		api.POST("/density", srv.analyzeDensity)
		api.POST("/keywords/extract", srv.extractKeywords)
		api.GET("/keywords/competition", srv.keywordCompetition)
		api.GET("/keywords/related", srv.relatedKeywords)

		api.POST("/slug", srv.makeSlug)
		api.GET("/templates", srv.listTemplates)
		api.POST("/templates/render", srv.renderTemplate)
		api.POST("/meta", srv.buildMeta)

		api.GET("/statistics", srv.statistics)
	}

	r.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
