package seoengine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a ContentSource backed by a map, with optional per-path
// read failures.
type fakeSource struct {
	paths   []string
	files   map[string]string
	listErr error
	readErr map[string]error
}

func (s *fakeSource) List(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.paths, nil
}

func (s *fakeSource) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.readErr[path]; err != nil {
		return nil, err
	}
	body, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file %s", path)
	}
	return []byte(body), nil
}

func testRepository(t *testing.T, source ContentSource) *Repository {
	t.Helper()
	return NewRepository(source, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestAssembleScenario(t *testing.T) {
	raw := "---\ntitle: Test Post\ndate: \"2024-01-01\"\n---\n\n# Hello World\n\nSome **text**."
	repo := testRepository(t, &fakeSource{})

	doc, err := repo.Assemble("test-post.md", []byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "test-post", doc.Slug)
	assert.Equal(t, "Test Post", doc.Title)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", doc.Date)
	assert.Contains(t, doc.HTMLContent, `id="hello-world"`)
	assert.Contains(t, doc.HTMLContent, "<strong>text</strong>")
	assert.Equal(t, "1 min read", doc.ReadingTime)
}

func TestAssembleDefaults(t *testing.T) {
	raw := "Just a body with no frontmatter at all."
	repo := testRepository(t, &fakeSource{})

	doc, err := repo.Assemble("bare.md", []byte(raw))
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, DefaultCategory, doc.Category)
	assert.Equal(t, DefaultAuthor, doc.Author)
	assert.Equal(t, DefaultCoverImage, doc.CoverImage)
	require.NotNil(t, doc.Tags)
	assert.Empty(t, doc.Tags)
}

func TestAssembleUnparseableDate(t *testing.T) {
	raw := "---\ntitle: Bad Date Post\ndate: not-a-date\n---\nbody"
	repo := testRepository(t, &fakeSource{})
	before := time.Now().Add(-time.Second)

	doc, err := repo.Assemble("bad-date.md", []byte(raw))
	require.NoError(t, err)

	parsed, perr := time.Parse(isoDateFormat, doc.Date)
	require.NoError(t, perr, "date should always be a valid ISO string")
	assert.True(t, parsed.After(before), "fallback date should be assembly time")
}

func TestAssembleEmptyDocument(t *testing.T) {
	repo := testRepository(t, &fakeSource{})
	_, err := repo.Assemble("empty.md", nil)
	require.Error(t, err)
	var asmErr *AssemblyError
	assert.ErrorAs(t, err, &asmErr)
	assert.Equal(t, "empty.md", asmErr.Path)
}

func TestLoadSortsByDateDescending(t *testing.T) {
	source := &fakeSource{
		paths: []string{"old.md", "new.md", "mid.md"},
		files: map[string]string{
			"old.md": "---\ntitle: Old\ndate: \"2022-05-01\"\n---\nbody",
			"new.md": "---\ntitle: New\ndate: \"2024-03-01\"\n---\nbody",
			"mid.md": "---\ntitle: Mid\ndate: \"2023-08-15\"\n---\nbody",
		},
	}
	repo := testRepository(t, source)

	docs := repo.Load(context.Background())
	require.Len(t, docs, 3)
	assert.Equal(t, "new", docs[0].Slug)
	assert.Equal(t, "mid", docs[1].Slug)
	assert.Equal(t, "old", docs[2].Slug)
}

func TestLoadDropsFailingDocuments(t *testing.T) {
	source := &fakeSource{
		paths: []string{"good.md", "unreadable.md", "empty.md"},
		files: map[string]string{
			"good.md":  "---\ntitle: Good\ndate: \"2024-01-01\"\n---\nbody",
			"empty.md": "",
		},
		readErr: map[string]error{
			"unreadable.md": fmt.Errorf("connection reset"),
		},
	}
	repo := testRepository(t, source)

	docs := repo.Load(context.Background())
	require.Len(t, docs, 1)
	assert.Equal(t, "good", docs[0].Slug)
}

func TestLoadSourceUnavailable(t *testing.T) {
	source := &fakeSource{listErr: fmt.Errorf("directory missing")}
	repo := testRepository(t, source)

	docs := repo.Load(context.Background())
	require.NotNil(t, docs, "unavailable source yields an empty list, not nil")
	assert.Empty(t, docs)
}

func TestLoadSlugCollisionLastWins(t *testing.T) {
	// Two paths reduce to the same slug; the later listing entry wins.
	source := &fakeSource{
		paths: []string{"post.md", "post .md"},
		files: map[string]string{
			"post.md":  "---\ntitle: First Version\ndate: \"2024-01-01\"\n---\nbody",
			"post .md": "---\ntitle: Second Version\ndate: \"2024-01-02\"\n---\nbody",
		},
	}
	repo := testRepository(t, source)

	docs := repo.Load(context.Background())
	require.Len(t, docs, 1)
	assert.Equal(t, "post", docs[0].Slug)
	assert.Equal(t, "Second Version", docs[0].Title)
}

func TestGetBySlug(t *testing.T) {
	source := &fakeSource{
		paths: []string{"findable.md"},
		files: map[string]string{
			"findable.md": "---\ntitle: Findable Post\ndate: \"2024-01-01\"\n---\nbody",
		},
	}
	repo := testRepository(t, source)

	doc, ok := repo.GetBySlug(context.Background(), "findable")
	require.True(t, ok)
	assert.Equal(t, "Findable Post", doc.Title)

	_, ok = repo.GetBySlug(context.Background(), "missing")
	assert.False(t, ok)
}

func TestLoadFromDirSource(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: Disk Post\ndate: \"2024-01-01\"\n---\n\n# Heading\n\nbody"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "disk-post.md"), []byte(content), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	repo := testRepository(t, NewDirSource(dir))
	docs := repo.Load(context.Background())

	require.Len(t, docs, 1, "non-markdown files are ignored")
	assert.Equal(t, "disk-post", docs[0].Slug)
	assert.True(t, strings.Contains(docs[0].HTMLContent, `id="heading"`))
}

func TestLoadFromMissingDir(t *testing.T) {
	repo := testRepository(t, NewDirSource(filepath.Join(t.TempDir(), "does-not-exist")))
	docs := repo.Load(context.Background())
	assert.Empty(t, docs)
}

func TestNormalizeDateLayouts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2024-01-01", "2024-01-01T00:00:00.000Z", true},
		{"2024-01-01T10:30:00Z", "2024-01-01T10:30:00.000Z", true},
		{"January 2, 2006", "2006-01-02T00:00:00.000Z", true},
		{"", "2025-06-01T12:00:00.000Z", true},
		{"not-a-date", "2025-06-01T12:00:00.000Z", false},
	}
	for _, tt := range tests {
		got, ok := normalizeDate(tt.input, now)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
