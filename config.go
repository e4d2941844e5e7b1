package seoengine

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Content source kinds selectable via SiteConfig.ContentSource.
const (
	SourceDir    = "dir"
	SourceHTTP   = "http"
	SourceSQLite = "sqlite"
)

// SiteConfig holds all configuration for a seoengine site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr string // Listen address (default ":3000")

	ContentSource  string // "dir", "http", or "sqlite" (default "dir")
	ContentDir     string // Markdown directory for the dir source (default "content/posts")
	ContentListURL string // Listing endpoint for the http source
	DatabasePath   string // SQLite path for the sqlite source (default "data/content.db")

	AssemblyConcurrency int           // Bounded fan-out while loading documents
	RateLimit           int           // Max analysis requests per IP per window (default 30)
	RateLimitWindow     time.Duration // Rate limit window (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentSource == "" {
		c.ContentSource = SourceDir
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/content.db"
	}
	if c.AssemblyConcurrency <= 0 {
		c.AssemblyConcurrency = defaultAssemblyConcurrency
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 30
	}
	if c.RateLimitWindow <= 0 {
		c.RateLimitWindow = time.Minute
	}
}

// LoadConfig builds a SiteConfig from environment variables, reading an
// optional .env file first.
func LoadConfig() SiteConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("skipping .env", "err", err)
	}
	cfg := SiteConfig{
		Name:           os.Getenv("SITE_NAME"),
		URL:            os.Getenv("SITE_URL"),
		Description:    os.Getenv("SITE_DESCRIPTION"),
		Author:         os.Getenv("SITE_AUTHOR"),
		Addr:           os.Getenv("ADDR"),
		ContentSource:  os.Getenv("CONTENT_SOURCE"),
		ContentDir:     os.Getenv("CONTENT_DIR"),
		ContentListURL: os.Getenv("CONTENT_LIST_URL"),
		DatabasePath:   os.Getenv("DATABASE_PATH"),
	}
	if v := os.Getenv("ASSEMBLY_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AssemblyConcurrency = n
		}
	}
	cfg.setDefaults()
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithSource overrides the content source chosen from configuration.
func WithSource(source ContentSource) Option {
	return func(a *App) {
		a.source = source
	}
}

// WithLogger sets the structured logger used by the App and Repository.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
