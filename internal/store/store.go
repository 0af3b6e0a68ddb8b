package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"
)

// maxListRecords bounds how many records List ever returns.
const maxListRecords = 1000

func (s *implStore) Save(ctx context.Context, rec *DocumentRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now().UTC()
	}

	if err := s.store.Upsert(rec.ID, rec); err != nil {
		return "", fmt.Errorf("save document record: %w", err)
	}

	s.logger.Debug(ctx, "Saved document record %s (%s)", rec.ID, rec.Title)
	return rec.ID, nil
}

func (s *implStore) List(ctx context.Context, limit int) ([]*DocumentRecord, error) {
	if limit <= 0 || limit > maxListRecords {
		limit = maxListRecords
	}

	var recs []DocumentRecord
	query := badgerhold.Where("ID").Ne("").SortBy("UploadedAt").Reverse().Limit(limit)
	if err := s.store.Find(&recs, query); err != nil {
		return nil, fmt.Errorf("list document records: %w", err)
	}

	result := make([]*DocumentRecord, len(recs))
	for i := range recs {
		result[i] = &recs[i]
	}
	return result, nil
}

func (s *implStore) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
