// Package markdown converts Markdown into sanitized HTML through a fixed
// transform pipeline: parse (GFM) -> heading ids -> render -> structural
// enhancement -> sanitize.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer is a reusable Markdown-to-HTML pipeline. It is safe for
// concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with tables, strikethrough, and task lists enabled.
// Raw HTML is passed through the parser untouched; the sanitize stage is the
// sole XSS defense and always runs last.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(headingIDTransformer{}, 100),
				),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render runs src through the full pipeline and returns sanitized HTML.
// A failure at any stage aborts the whole render.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	enhanced, err := enhance(buf.String())
	if err != nil {
		return "", fmt.Errorf("markdown: enhance: %w", err)
	}
	return policy.Sanitize(enhanced), nil
}

// Slugify converts heading or file text to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
