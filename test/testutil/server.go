// Package testutil serves dataset archives over HTTP for tests.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glorpus-work/o3data/internal/logger"
	"github.com/glorpus-work/o3data/pkg/archive"
)

// TestServer serves in-memory files and counts the requests per file.
type TestServer struct {
	*httptest.Server

	mu    sync.Mutex
	files map[string][]byte
	hits  map[string]int
}

// NewTestServer starts a server for files keyed by their base name.
// The server is closed when the test ends.
func NewTestServer(t *testing.T, files map[string][]byte) *TestServer {
	t.Helper()
	ts := &TestServer{files: files, hits: map[string]int{}}
	ts.Server = httptest.NewServer(http.HandlerFunc(ts.serve))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) serve(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)

	ts.mu.Lock()
	ts.hits[name]++
	body, ok := ts.files[name]
	ts.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	logger.Debug("Serving test file", logger.Fields{"file": name})
	_, _ = w.Write(body)
}

// FileURL returns the URL of name on the server.
func (ts *TestServer) FileURL(name string) string {
	return ts.URL + "/" + name
}

// Hits returns how often name was requested.
func (ts *TestServer) Hits(name string) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.hits[name]
}

// ZipDataset writes files below a temporary directory and returns them
// packed as a zip archive.
func ZipDataset(t *testing.T, files map[string]string) []byte {
	t.Helper()

	tempDir := t.TempDir()
	sourceDir := filepath.Join(tempDir, "source")
	for name, content := range files {
		full := filepath.Join(sourceDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", full, err)
		}
	}

	archivePath := filepath.Join(tempDir, "dataset.zip")
	if err := archive.NewManager(nil).Create(context.Background(), sourceDir, archivePath); err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}
	data, err := os.ReadFile(archivePath)
	if err != nil {
		t.Fatalf("Failed to read archive: %v", err)
	}
	return data
}

// WriteConfig writes a configuration file into a temporary directory and
// returns its path. The document is formatted with args when given.
func WriteConfig(t *testing.T, document string, args ...any) string {
	t.Helper()
	if len(args) > 0 {
		document = fmt.Sprintf(document, args...)
	}
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(document), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}
