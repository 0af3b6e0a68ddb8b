package store

import (
	"context"
	"time"
)

// DocumentRecord is the persisted metadata for a summarized document.
type DocumentRecord struct {
	ID              string    `badgerhold:"key" json:"_id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Summary         string    `json:"summary"`
	UploadedBy      string    `json:"uploadedBy"`
	UploadedAt      time.Time `json:"uploadedAt"`
	SummaryFilePath string    `json:"summaryFilePath"`
}

// Store persists document records.
type Store interface {
	// Save inserts the record, generating an ID when absent, and returns
	// the record identifier.
	Save(ctx context.Context, rec *DocumentRecord) (string, error)

	// List returns records newest first, up to limit (bounded at 1000).
	List(ctx context.Context, limit int) ([]*DocumentRecord, error)

	Close() error
}
