package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/store"
)

type stubSummarizer struct {
	summary string
	err     error
}

func (s *stubSummarizer) SummarizeDocument(ctx context.Context, path string) (string, error) {
	return s.summary, s.err
}

func (s *stubSummarizer) SummarizeText(ctx context.Context, text string) string {
	return s.summary
}

func (s *stubSummarizer) SummarizeSection(ctx context.Context, body string) string {
	return s.summary
}

func (s *stubSummarizer) SaveSummary(text, base, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, base+"_summary.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}

type stubStore struct {
	recs []*store.DocumentRecord
}

func (s *stubStore) Save(ctx context.Context, rec *store.DocumentRecord) (string, error) {
	rec.ID = fmt.Sprintf("id-%d", len(s.recs)+1)
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *stubStore) List(ctx context.Context, limit int) ([]*store.DocumentRecord, error) {
	return s.recs, nil
}

func (s *stubStore) Close() error { return nil }

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{}
	cfg.Paths.Raw = filepath.Join(base, "raw")
	cfg.Paths.Processed = filepath.Join(base, "processed")
	cfg.Paths.Summaries = filepath.Join(base, "summaries")
	cfg.Server.UploadedBy = "tester"
	for _, dir := range []string{cfg.Paths.Raw, cfg.Paths.Processed, cfg.Paths.Summaries} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func TestProcess(t *testing.T) {
	cfg := newTestConfig(t)
	st := &stubStore{}
	proc := New(cfg, &stubSummarizer{summary: "the summary"}, st, logger.New("error", "console"))

	rawPath := filepath.Join(cfg.Paths.Raw, "report.txt")
	if err := os.WriteFile(rawPath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := proc.Process(context.Background(), rawPath, "")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if res.Summary != "the summary" {
		t.Errorf("Summary = %q", res.Summary)
	}
	if res.RecordID == "" {
		t.Error("RecordID is empty")
	}

	// Summary file written.
	data, err := os.ReadFile(res.SummaryFilePath)
	if err != nil {
		t.Fatalf("read summary file: %v", err)
	}
	if string(data) != "the summary" {
		t.Errorf("summary file content = %q", string(data))
	}

	// Raw file moved out of the inbox.
	if _, err := os.Stat(rawPath); !os.IsNotExist(err) {
		t.Error("raw file still present in raw dir")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Processed, "report.txt")); err != nil {
		t.Errorf("raw file not moved to processed dir: %v", err)
	}

	// Record saved with a local URL.
	if len(st.recs) != 1 {
		t.Fatalf("got %d records, want 1", len(st.recs))
	}
	rec := st.recs[0]
	if rec.Title != "report" {
		t.Errorf("Title = %q, want report", rec.Title)
	}
	if rec.URL != "local://report.txt" {
		t.Errorf("URL = %q, want local://report.txt", rec.URL)
	}
	if rec.UploadedBy != "tester" {
		t.Errorf("UploadedBy = %q", rec.UploadedBy)
	}
}

func TestProcessDocxOutput(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Gemini.DocxOutput = true
	st := &stubStore{}
	summary := "## Overview\n- first point\n- second point\nClosing **remark** paragraph."
	proc := New(cfg, &stubSummarizer{summary: summary}, st, logger.New("error", "console"))

	rawPath := filepath.Join(cfg.Paths.Raw, "styled.txt")
	if err := os.WriteFile(rawPath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := proc.Process(context.Background(), rawPath, "")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// The styled docx lands next to the plain-text summary.
	docxPath := strings.TrimSuffix(res.SummaryFilePath, ".txt") + ".docx"
	info, err := os.Stat(docxPath)
	if err != nil {
		t.Fatalf("docx summary not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx summary file is empty")
	}
}

func TestProcessSourceURL(t *testing.T) {
	cfg := newTestConfig(t)
	st := &stubStore{}
	proc := New(cfg, &stubSummarizer{summary: "ok"}, st, logger.New("error", "console"))

	rawPath := filepath.Join(cfg.Paths.Raw, "remote.txt")
	if err := os.WriteFile(rawPath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := proc.Process(context.Background(), rawPath, "https://example.com/remote.txt"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if st.recs[0].URL != "https://example.com/remote.txt" {
		t.Errorf("URL = %q", st.recs[0].URL)
	}
}

func TestProcessSummarizeFails(t *testing.T) {
	cfg := newTestConfig(t)
	proc := New(cfg, &stubSummarizer{err: errors.New("unsupported file type: .xlsx")}, &stubStore{}, logger.New("error", "console"))

	if _, err := proc.Process(context.Background(), "doc.xlsx", ""); err == nil {
		t.Error("Process() should propagate extraction failure")
	}
}
