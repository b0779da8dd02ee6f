// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the service reads at startup.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	DevMode  bool
	DataDir  string

	// Site identity used by the meta assembler.
	SiteOrigin   string
	SiteName     string
	SiteTagline  string
	SiteLogoURL  string
	DefaultImage string
	TwitterSite  string
	SearchURL    string
	SameAs       []string

	RateLimitPerSecond float64
	RateLimitBurst     float64
}

// Load reads the configuration, falling back to development defaults.
func Load() Config {
	return Config{
		Port:     envOr("PORT", "8082"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: envOr("LOG_LEVEL", "info"),
		DevMode:  os.Getenv("DEV_MODE") == "true",
		DataDir:  envOr("DATA_DIR", "./data"),

		SiteOrigin:   envOr("SITE_ORIGIN", "https://tradeforge.io"),
		SiteName:     envOr("SITE_NAME", "TradeForge"),
		SiteTagline:  envOr("SITE_TAGLINE", "Expert advisors, indicators and trading tools for MetaTrader."),
		SiteLogoURL:  envOr("SITE_LOGO_URL", "https://tradeforge.io/logo.png"),
		DefaultImage: envOr("DEFAULT_IMAGE", "https://tradeforge.io/og-default.png"),
		TwitterSite:  os.Getenv("TWITTER_SITE"),
		SearchURL:    os.Getenv("SEARCH_URL"),
		SameAs:       envList("SAME_AS"),

		RateLimitPerSecond: envFloat("RATE_LIMIT_PER_SECOND", 2),
		RateLimitBurst:     envFloat("RATE_LIMIT_BURST", 5),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
