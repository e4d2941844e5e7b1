package seoengine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eringen/seoengine/markdown"
)

// Defaults applied when frontmatter fields are absent.
const (
	DefaultTitle      = "Untitled"
	DefaultCategory   = "Uncategorized"
	DefaultAuthor     = "Anonymous"
	DefaultCoverImage = "/images/placeholder.jpg"
)

// defaultAssemblyConcurrency bounds the fan-out while loading documents.
const defaultAssemblyConcurrency = 8

// AssemblyError wraps a per-document assembly failure with its source path.
type AssemblyError struct {
	Path string
	Err  error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("seoengine: assemble %s: %v", e.Path, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }

// Repository assembles Documents from a ContentSource. Every Load is a
// fresh, independent traversal; nothing is cached between reads.
type Repository struct {
	source      ContentSource
	renderer    *markdown.Renderer
	logger      *slog.Logger
	concurrency int
	now         func() time.Time
}

// NewRepository creates a Repository over the given source.
func NewRepository(source ContentSource, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		source:      source,
		renderer:    markdown.New(),
		logger:      logger,
		concurrency: defaultAssemblyConcurrency,
		now:         time.Now,
	}
}

// Assemble builds one Document from a raw source file: frontmatter split,
// field defaulting, Markdown rendering, reading time. A failure anywhere
// returns an AssemblyError and no Document.
func (r *Repository) Assemble(path string, raw []byte) (Document, error) {
	if len(raw) == 0 {
		return Document{}, &AssemblyError{Path: path, Err: fmt.Errorf("empty document")}
	}

	meta, body := ExtractFrontmatter(string(raw))

	date, ok := normalizeDate(meta.Date, r.now())
	if !ok {
		r.logger.Warn("unparseable date, falling back to now",
			"path", path, "date", meta.Date)
	}

	htmlContent, err := r.renderer.Render(body)
	if err != nil {
		return Document{}, &AssemblyError{Path: path, Err: err}
	}

	doc := Document{
		Slug:           markdown.Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))),
		Title:          defaultString(meta.Title, DefaultTitle),
		Date:           date,
		Excerpt:        meta.Excerpt,
		Category:       defaultString(meta.Category, DefaultCategory),
		Tags:           meta.Tags,
		CoverImage:     defaultString(meta.CoverImage, DefaultCoverImage),
		Author:         defaultString(meta.Author, DefaultAuthor),
		AuthorImage:    meta.AuthorImage,
		AuthorBio:      meta.AuthorBio,
		Content:        body,
		HTMLContent:    htmlContent,
		ReadingTime:    ReadingTime(body),
		AffiliateLinks: meta.AffiliateLinks,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if doc.Slug == "" {
		return Document{}, &AssemblyError{Path: path, Err: fmt.Errorf("cannot derive slug from path")}
	}
	return doc, nil
}

// Load enumerates the source and assembles every document with bounded
// concurrency. Failing documents are logged and dropped; an unreachable
// source yields an empty list, never an error. Results are sorted by date
// descending. Slug collisions resolve last-read-wins (listing order), and
// the winner replaces the loser silently apart from a log line.
func (r *Repository) Load(ctx context.Context) []Document {
	paths, err := r.source.List(ctx)
	if err != nil {
		r.logger.Error("content source unavailable", "err", err)
		return []Document{}
	}

	results := make([]*Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			raw, err := r.source.Read(gctx, path)
			if err != nil {
				r.logger.Warn("dropping unreadable document", "path", path, "err", err)
				return nil
			}
			doc, err := r.Assemble(path, raw)
			if err != nil {
				r.logger.Warn("dropping malformed document", "path", path, "err", err)
				return nil
			}
			results[i] = &doc
			return nil
		})
	}
	// Per-document failures are swallowed above; Wait only fails on
	// context cancellation.
	_ = g.Wait()

	docs := make([]Document, 0, len(paths))
	bySlug := make(map[string]int, len(paths))
	for i, d := range results {
		if d == nil {
			continue
		}
		if j, seen := bySlug[d.Slug]; seen {
			r.logger.Warn("slug collision, last document wins",
				"slug", d.Slug, "path", paths[i])
			docs[j] = *d
			continue
		}
		bySlug[d.Slug] = len(docs)
		docs = append(docs, *d)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date > docs[j].Date
	})
	return docs
}

// GetBySlug loads the repository and returns the first document matching
// slug, or false when absent.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (Document, bool) {
	for _, doc := range r.Load(ctx) {
		if doc.Slug == slug {
			return doc, true
		}
	}
	return Document{}, false
}

// isoDateFormat matches the wire shape produced by the frontend stack this
// feed was built for (millisecond precision, UTC).
const isoDateFormat = "2006-01-02T15:04:05.000Z07:00"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	isoDateFormat,
	"2006-01-02 15:04:05",
	"January 2, 2006",
}

// normalizeDate parses a frontmatter date into the canonical ISO form.
// Absent or unparseable input falls back to now; the bool reports whether a
// non-empty input failed to parse.
func normalizeDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC().Format(isoDateFormat), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(isoDateFormat), true
		}
	}
	return now.UTC().Format(isoDateFormat), false
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
