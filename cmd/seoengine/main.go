// Command seoengine serves a Markdown blog corpus as sanitized HTML
// documents with SEO validation and readability scoring endpoints.
package main

import (
	"log/slog"
	"os"

	"github.com/eringen/seoengine"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := seoengine.LoadConfig()

	app, err := seoengine.New(cfg, seoengine.WithLogger(logger))
	if err != nil {
		logger.Error("failed to initialize", "err", err)
		os.Exit(1)
	}

	logger.Info("starting seoengine",
		"addr", cfg.Addr,
		"source", cfg.ContentSource,
	)
	if err := app.Start(); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
