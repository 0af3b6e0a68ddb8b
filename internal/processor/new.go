package processor

import (
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/store"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	store      store.Store
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, sum summarizer.Summarizer, st store.Store, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		store:      st,
		logger:     log,
	}
}
