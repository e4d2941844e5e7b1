// Package seoengine assembles a Markdown blog corpus into sanitized HTML
// documents and runs SEO and readability analysis over it.
//
// Raw documents come from a pluggable ContentSource (directory, remote
// listing API, or SQLite). Each read builds fresh Document values through
// the frontmatter extractor and the markdown pipeline, then the SEO
// validator and readability scorer consume them on demand over an HTTP API.
package seoengine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
)

// GracefulShutdownTimeout bounds how long Start waits for in-flight
// requests after an interrupt.
const GracefulShutdownTimeout = 10 * time.Second

// App is the central seoengine application. It wires together the content
// source, repository, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Repo   *Repository

	source       ContentSource
	logger       *slog.Logger
	limiter      *RequestLimiter
	customRoutes []func(*App)
	closers      []func() error
}

// New creates a fully wired App. The content source is chosen from
// cfg.ContentSource unless WithSource overrides it.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		logger: slog.Default(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.source == nil {
		source, err := newSourceFromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("seoengine: init source: %w", err)
		}
		a.source = source
		if closer, ok := source.(interface{ Close() error }); ok {
			a.closers = append(a.closers, closer.Close)
		}
	}

	a.Repo = NewRepository(a.source, a.logger)
	a.Repo.concurrency = cfg.AssemblyConcurrency

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

func newSourceFromConfig(cfg SiteConfig) (ContentSource, error) {
	switch cfg.ContentSource {
	case SourceDir:
		return NewDirSource(cfg.ContentDir), nil
	case SourceHTTP:
		if cfg.ContentListURL == "" {
			return nil, fmt.Errorf("ContentListURL is required for the http source")
		}
		return NewHTTPSource(cfg.ContentListURL), nil
	case SourceSQLite:
		return NewSQLiteSource(cfg.DatabasePath)
	default:
		return nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	api := e.Group("/api")
	api.GET("/posts", a.handleListPosts)
	api.GET("/posts/:slug", a.handlePost)

	seo := api.Group("/seo", a.rateLimit)
	seo.GET("/validate", a.handleSEOValidate)
	seo.GET("/readability/:slug", a.handleReadability)
}

// Start runs the server until an interrupt, then shuts down gracefully.
func (a *App) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return a.Close()
}

// Close releases resources held by the content source.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
