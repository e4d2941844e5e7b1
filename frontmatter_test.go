package seoengine

import (
	"testing"
)

func TestExtractFrontmatter(t *testing.T) {
	raw := `---
title: Test Post
date: "2024-01-01"
excerpt: A short excerpt
category: Engineering
tags:
  - go
  - web
coverImage: /images/cover.jpg
author: Jane Doe
---

# Body

Content here.`

	meta, body := ExtractFrontmatter(raw)
	if meta.Title != "Test Post" {
		t.Errorf("Title = %q, want %q", meta.Title, "Test Post")
	}
	if meta.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", meta.Date, "2024-01-01")
	}
	if meta.Category != "Engineering" {
		t.Errorf("Category = %q, want %q", meta.Category, "Engineering")
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "go" || meta.Tags[1] != "web" {
		t.Errorf("Tags = %v, want [go web]", meta.Tags)
	}
	if meta.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", meta.Author, "Jane Doe")
	}
	if body != "\n# Body\n\nContent here." {
		t.Errorf("body = %q", body)
	}
}

func TestExtractFrontmatterAbsent(t *testing.T) {
	raw := "# Just a heading\n\nNo frontmatter at all."
	meta, body := ExtractFrontmatter(raw)
	if meta.Title != "" || meta.Tags != nil {
		t.Errorf("meta should be zero, got %+v", meta)
	}
	if body != raw {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestExtractFrontmatterUnclosed(t *testing.T) {
	raw := "---\ntitle: Never closed\n\nbody text"
	meta, body := ExtractFrontmatter(raw)
	if meta.Title != "" {
		t.Errorf("unclosed frontmatter should yield zero meta, got %+v", meta)
	}
	if body != raw {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestExtractFrontmatterMalformedYAML(t *testing.T) {
	raw := "---\ntitle: [unterminated\n---\nbody"
	meta, body := ExtractFrontmatter(raw)
	if meta.Title != "" {
		t.Errorf("malformed yaml should yield zero meta, got %+v", meta)
	}
	if body != raw {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestExtractFrontmatterInlineTags(t *testing.T) {
	raw := "---\ntitle: T\ntags: [go, testing, web]\n---\nbody"
	meta, _ := ExtractFrontmatter(raw)
	if len(meta.Tags) != 3 || meta.Tags[2] != "web" {
		t.Errorf("Tags = %v, want [go testing web]", meta.Tags)
	}
}

func TestExtractFrontmatterAffiliateLinks(t *testing.T) {
	raw := `---
title: Gear Review
affiliateLinks:
  - id: kb-1
    url: https://shop.example/kb
    platform: amazon
    title: Mechanical Keyboard
    price: "99.00"
---
body`
	meta, _ := ExtractFrontmatter(raw)
	if len(meta.AffiliateLinks) != 1 {
		t.Fatalf("AffiliateLinks count = %d, want 1", len(meta.AffiliateLinks))
	}
	link := meta.AffiliateLinks[0]
	if link.ID != "kb-1" || link.Platform != "amazon" || link.Price != "99.00" {
		t.Errorf("link = %+v", link)
	}
}

func TestExtractFrontmatterEmptyBody(t *testing.T) {
	raw := "---\ntitle: Only Meta\n---"
	meta, body := ExtractFrontmatter(raw)
	if meta.Title != "Only Meta" {
		t.Errorf("Title = %q, want %q", meta.Title, "Only Meta")
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}
