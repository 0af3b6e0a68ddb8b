package processor

import "context"

// Processor runs the full pipeline for one document: summarize, persist the
// summary file, record the result and archive the raw file.
type Processor interface {
	Process(ctx context.Context, path, sourceURL string) (*Result, error)
}

// Result describes a processed document.
type Result struct {
	Summary         string
	SummaryFilePath string
	RecordID        string
}
