package summarizer

import "context"

// Summarizer produces section-aware document summaries via a generative
// language model.
type Summarizer interface {
	// SummarizeDocument extracts the document text and summarizes it.
	// It fails only when extraction fails.
	SummarizeDocument(ctx context.Context, path string) (string, error)

	// SummarizeText splits text into sections, summarizes each in order and
	// merges the results. It always returns some textual output, possibly
	// containing per-section failure markers.
	SummarizeText(ctx context.Context, text string) string

	// SummarizeSection summarizes a single section body. Bodies below the
	// minimum word count return "" without a model call; exhausted retries
	// return SentinelFailed.
	SummarizeSection(ctx context.Context, body string) string

	// SaveSummary writes text to <outputDir>/<baseFilename>_summary.txt,
	// creating the directory and overwriting any existing file.
	SaveSummary(text, baseFilename, outputDir string) (string, error)
}
