package seoengine

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the typed frontmatter block of a source document. Fields are
// optional; defaulting happens during assembly, not here.
type Meta struct {
	Title          string          `yaml:"title"`
	Date           string          `yaml:"date"`
	Excerpt        string          `yaml:"excerpt"`
	Category       string          `yaml:"category"`
	Tags           []string        `yaml:"tags"`
	CoverImage     string          `yaml:"coverImage"`
	Author         string          `yaml:"author"`
	AuthorImage    string          `yaml:"authorImage"`
	AuthorBio      string          `yaml:"authorBio"`
	AffiliateLinks []AffiliateLink `yaml:"affiliateLinks"`
}

const frontmatterDelimiter = "---"

// ExtractFrontmatter splits a leading "---" delimited YAML block from the
// Markdown body. Absent, unclosed, or unparseable frontmatter yields a zero
// Meta and the full input as body; it never fails for malformed delimiters.
func ExtractFrontmatter(raw string) (Meta, string) {
	var meta Meta

	rest, found := strings.CutPrefix(raw, frontmatterDelimiter+"\n")
	if !found {
		if rest, found = strings.CutPrefix(raw, frontmatterDelimiter+"\r\n"); !found {
			return meta, raw
		}
	}

	block, body, found := cutDelimiter(rest)
	if !found {
		return meta, raw
	}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Meta{}, raw
	}
	return meta, body
}

// cutDelimiter finds the closing "---" line and splits the YAML block from
// the remaining body.
func cutDelimiter(s string) (block, body string, found bool) {
	offset := 0
	for {
		idx := strings.Index(s[offset:], frontmatterDelimiter)
		if idx < 0 {
			return "", "", false
		}
		idx += offset
		lineStart := idx == 0 || s[idx-1] == '\n'
		lineEnd := idx + len(frontmatterDelimiter)
		if lineStart {
			rest := s[lineEnd:]
			rest = strings.TrimPrefix(rest, "\r")
			if rest == "" {
				return s[:idx], "", true
			}
			if strings.HasPrefix(rest, "\n") {
				return s[:idx], rest[1:], true
			}
		}
		offset = lineEnd
	}
}
