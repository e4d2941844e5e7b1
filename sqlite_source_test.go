package seoengine

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestSource(t *testing.T) *SQLiteSource {
	t.Helper()
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("failed to create source: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSourcePutAndRead(t *testing.T) {
	s := setupTestSource(t)
	ctx := context.Background()

	body := "---\ntitle: Stored Post\n---\n\n# Hello"
	if err := s.Put(ctx, "stored-post.md", body); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Read(ctx, "stored-post.md")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != body {
		t.Errorf("Read = %q, want %q", got, body)
	}
}

func TestSQLiteSourcePutReplaces(t *testing.T) {
	s := setupTestSource(t)
	ctx := context.Background()

	if err := s.Put(ctx, "p.md", "first"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "p.md", "second"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Read(ctx, "p.md")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Read = %q, want %q", got, "second")
	}

	paths, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("List count = %d, want 1", len(paths))
	}
}

func TestSQLiteSourceListOrdered(t *testing.T) {
	s := setupTestSource(t)
	ctx := context.Background()

	for _, path := range []string{"zeta.md", "alpha.md", "mid.md"} {
		if err := s.Put(ctx, path, "body"); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	paths, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	expected := []string{"alpha.md", "mid.md", "zeta.md"}
	if len(paths) != len(expected) {
		t.Fatalf("List count = %d, want %d", len(paths), len(expected))
	}
	for i, want := range expected {
		if paths[i] != want {
			t.Errorf("List[%d] = %q, want %q", i, paths[i], want)
		}
	}
}

func TestSQLiteSourceReadMissing(t *testing.T) {
	s := setupTestSource(t)
	if _, err := s.Read(context.Background(), "nope.md"); err == nil {
		t.Fatal("Read of missing document should fail")
	}
}

func TestSQLiteSourceDelete(t *testing.T) {
	s := setupTestSource(t)
	ctx := context.Background()

	if err := s.Put(ctx, "gone.md", "body"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Delete(ctx, "gone.md"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Read(ctx, "gone.md"); err == nil {
		t.Fatal("Read after Delete should fail")
	}
}
