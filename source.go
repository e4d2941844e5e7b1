package seoengine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ContentSource enumerates and reads raw source documents. Implementations
// exist for a local directory, a remote listing API, and SQLite.
type ContentSource interface {
	// List returns the paths of every available document.
	List(ctx context.Context) ([]string, error)
	// Read returns the raw bytes of one document.
	Read(ctx context.Context, path string) ([]byte, error)
}

// DirSource reads Markdown documents from a local directory.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// List returns the names of all .md files in the directory, sorted.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("seoengine: list %s: %w", s.Dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		paths = append(paths, e.Name())
	}
	sort.Strings(paths)
	return paths, nil
}

// Read returns the contents of one file. The path is flattened to its base
// name so List output can never escape the content directory.
func (s *DirSource) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("seoengine: read %s: %w", path, err)
	}
	return data, nil
}

// remoteEntry is one file record from the remote listing endpoint
// (GitHub contents API shape).
type remoteEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// HTTPSource reads Markdown documents from a remote listing endpoint plus
// per-file raw fetches.
type HTTPSource struct {
	ListURL string
	Client  *http.Client

	mu        sync.Mutex
	downloads map[string]string
}

// NewHTTPSource creates an HTTPSource for the given listing URL.
func NewHTTPSource(listURL string) *HTTPSource {
	return &HTTPSource{
		ListURL: listURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// List fetches the remote file listing and returns the Markdown file names.
func (s *HTTPSource) List(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ListURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seoengine: list remote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seoengine: list remote: unexpected status %d", resp.StatusCode)
	}
	var entries []remoteEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("seoengine: list remote: %w", err)
	}

	s.mu.Lock()
	s.downloads = make(map[string]string, len(entries))
	var paths []string
	for _, e := range entries {
		if e.Type != "" && e.Type != "file" {
			continue
		}
		if !strings.HasSuffix(e.Name, ".md") {
			continue
		}
		paths = append(paths, e.Name)
		s.downloads[e.Name] = e.DownloadURL
	}
	s.mu.Unlock()

	sort.Strings(paths)
	return paths, nil
}

// Read fetches one document's raw content using the download URL recorded
// by the most recent List call.
func (s *HTTPSource) Read(ctx context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	url := s.downloads[path]
	s.mu.Unlock()
	if url == "" {
		return nil, fmt.Errorf("seoengine: read remote %s: no download url, call List first", path)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seoengine: read remote %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seoengine: read remote %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
