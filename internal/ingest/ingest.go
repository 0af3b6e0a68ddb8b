package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

// maxDownloadBytes caps how much of a remote document is read.
const maxDownloadBytes = 50 << 20 // 50 MB

type implIngestor struct {
	rawDir string
	client *http.Client
	logger logger.Logger
}

// New creates an Ingestor that saves downloads into rawDir.
func New(rawDir string, log logger.Logger) Ingestor {
	return &implIngestor{
		rawDir: rawDir,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: log,
	}
}

func (i *implIngestor) SaveFromURL(ctx context.Context, rawURL, filename string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("invalid document URL: %s", rawURL)
	}

	// Strip any path components a caller might smuggle in.
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	if err := os.MkdirAll(i.rawDir, 0755); err != nil {
		return "", fmt.Errorf("create raw dir: %w", err)
	}

	destPath := filepath.Join(i.rawDir, filename)
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", destPath, err)
	}

	n, err := io.Copy(dest, io.LimitReader(resp.Body, maxDownloadBytes))
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("write %s: %w", destPath, err)
	}

	i.logger.Info(ctx, "Downloaded %s (%d bytes) -> %s", rawURL, n, destPath)
	return destPath, nil
}
