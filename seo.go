package seoengine

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SEO rule thresholds.
const (
	minTitleLength   = 10
	minExcerptLength = 50
	minContentLength = 500
)

// ValidateSEO runs the fixed SEO rule battery over every document and
// returns the categorized issues plus aggregate statistics. Rule violations
// are the product of this function, not failures; it always succeeds.
func ValidateSEO(docs []Document) Report {
	report := Report{
		Errors: []Issue{},
		Stats:  Stats{TotalPosts: len(docs)},
	}
	titleCounts := make(map[string]int, len(docs))

	for _, doc := range docs {
		titleCounts[doc.Title]++
		issues := validateDocument(doc)
		if len(issues) > 0 {
			report.Stats.PostsWithIssues++
		}
		// Stats count posts touched by each category, so every counter
		// moves at most once per document.
		touched := make(map[string]bool, len(issues))
		for _, issue := range issues {
			touched[issue.Type] = true
		}
		if touched["title"] || touched["excerpt"] || touched["cover-image"] || touched["category"] {
			report.Stats.MissingMetadata++
		}
		if touched["content"] {
			report.Stats.ShortContent++
		}
		if touched["tags"] {
			report.Stats.PostsWithoutTags++
		}
		if touched["image-alt"] {
			report.Stats.MissingImages++
		}
		report.Errors = append(report.Errors, issues...)
	}

	for title, count := range titleCounts {
		if count > 1 {
			report.Errors = append(report.Errors, Issue{
				Type:     "duplicate-title",
				Message:  fmt.Sprintf("Title %q is used by %d posts", title, count),
				Severity: SeverityError,
			})
		}
	}
	return report
}

// validateDocument applies the per-document rules. Each rule is independent
// and contributes zero or one issue.
func validateDocument(doc Document) []Issue {
	var issues []Issue
	add := func(issueType, severity, format string, args ...any) {
		issues = append(issues, Issue{
			Type:     issueType,
			Message:  fmt.Sprintf(format, args...),
			Page:     doc.Slug,
			Severity: severity,
		})
	}

	if len(doc.Title) < minTitleLength {
		add("title", SeverityError, "Title is missing or shorter than %d characters", minTitleLength)
	}
	if len(doc.Excerpt) < minExcerptLength {
		add("excerpt", SeverityWarning, "Excerpt is missing or shorter than %d characters", minExcerptLength)
	}
	if len(doc.Content) < minContentLength {
		add("content", SeverityWarning, "Content is shorter than %d characters", minContentLength)
	}
	if len(doc.Tags) == 0 {
		add("tags", SeverityWarning, "Post has no tags")
	}
	if doc.CoverImage == "" || doc.CoverImage == DefaultCoverImage {
		add("cover-image", SeverityWarning, "Post uses the placeholder cover image")
	}
	if doc.Category == "" || doc.Category == DefaultCategory {
		add("category", SeverityWarning, "Post has no category")
	}
	if total, withAlt := imageAltCounts(doc.HTMLContent); total > withAlt {
		add("image-alt", SeverityWarning, "%d of %d images are missing alt text", total-withAlt, total)
	}
	return issues
}

// imageAltCounts audits rendered HTML for <img> tags and how many of them
// carry an alt attribute. An empty alt counts as present; decorative images
// declare alt="" on purpose.
func imageAltCounts(htmlContent string) (total, withAlt int) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 0, 0
	}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		total++
		if _, ok := s.Attr("alt"); ok {
			withAlt++
		}
	})
	return total, withAlt
}
