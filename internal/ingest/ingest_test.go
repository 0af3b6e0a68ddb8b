package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

func TestSaveFromURL(t *testing.T) {
	content := "REPORT\nsome remote document content\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer srv.Close()

	rawDir := filepath.Join(t.TempDir(), "raw")
	ing := New(rawDir, logger.New("error", "console"))

	path, err := ing.SaveFromURL(context.Background(), srv.URL, "report.txt")
	if err != nil {
		t.Fatalf("SaveFromURL() error = %v", err)
	}
	if want := filepath.Join(rawDir, "report.txt"); path != want {
		t.Errorf("SaveFromURL() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("saved content = %q, want %q", string(data), content)
	}
}

func TestSaveFromURLSanitizesFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	rawDir := t.TempDir()
	ing := New(rawDir, logger.New("error", "console"))

	path, err := ing.SaveFromURL(context.Background(), srv.URL, "../../etc/evil.txt")
	if err != nil {
		t.Fatalf("SaveFromURL() error = %v", err)
	}
	if want := filepath.Join(rawDir, "evil.txt"); path != want {
		t.Errorf("SaveFromURL() path = %q, want %q", path, want)
	}
}

func TestSaveFromURLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	ing := New(t.TempDir(), logger.New("error", "console"))
	ctx := context.Background()

	tests := []struct {
		name     string
		url      string
		filename string
	}{
		{"bad scheme", "ftp://example.com/doc.pdf", "doc.pdf"},
		{"not a url", "::::", "doc.pdf"},
		{"http error status", srv.URL, "doc.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ing.SaveFromURL(ctx, tt.url, tt.filename); err == nil {
				t.Error("SaveFromURL() should return error")
			}
		})
	}
}
