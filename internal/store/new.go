package store

import (
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implStore struct {
	store  *badgerhold.Store
	logger logger.Logger
}

// New opens (creating if needed) the Badger database at path.
func New(path string, log logger.Logger) (Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	st, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &implStore{store: st, logger: log}, nil
}
