package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/store"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

// Process orchestrates the pipeline for one document. Only extraction can
// abort it; a degraded summary still flows through to the store and disk.
func (p *implProcessor) Process(ctx context.Context, path, sourceURL string) (*Result, error) {
	startTime := time.Now()
	filename := filepath.Base(path)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	if sourceURL == "" {
		sourceURL = "local://" + filename
	}

	p.logger.Info(ctx, "Starting document processing: %s", path)

	// Step 1: extract and summarize
	summary, err := p.summarizer.SummarizeDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("summarize document: %w", err)
	}

	// Step 2: save the summary text for download
	summaryPath, err := p.summarizer.SaveSummary(summary, base, p.cfg.Paths.Summaries)
	if err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}

	// Step 3: optional styled docx rendering next to the .txt
	if p.cfg.Gemini.DocxOutput {
		docxPath := strings.TrimSuffix(summaryPath, ".txt") + ".docx"
		if err := summarizer.WriteSummaryDocx(base, summary, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx summary: %v", err)
		}
	}

	// Step 4: record metadata
	id, err := p.store.Save(ctx, &store.DocumentRecord{
		Title:           base,
		URL:             sourceURL,
		Summary:         summary,
		UploadedBy:      p.cfg.Server.UploadedBy,
		SummaryFilePath: summaryPath,
	})
	if err != nil {
		return nil, fmt.Errorf("save document record: %w", err)
	}

	// Step 5: move the raw file out of the inbox
	if err := p.moveToProcessed(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to processed folder: %v", path, err)
	}

	p.logger.Info(ctx, "Processing completed: %s (summary: %s, took %s)",
		filename, summaryPath, time.Since(startTime))

	return &Result{
		Summary:         summary,
		SummaryFilePath: summaryPath,
		RecordID:        id,
	}, nil
}

func (p *implProcessor) moveToProcessed(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Processed, 0755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Processed, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to processed: %w", err)
	}
	p.logger.Debug(ctx, "Moved %s -> %s", path, dest)
	return nil
}
