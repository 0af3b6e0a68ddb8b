package ingest

import "context"

// Ingestor fetches remote documents into the raw directory.
type Ingestor interface {
	// SaveFromURL downloads the document at rawURL and writes it to the raw
	// directory under filename. Returns the saved path.
	SaveFromURL(ctx context.Context, rawURL, filename string) (string, error)
}
