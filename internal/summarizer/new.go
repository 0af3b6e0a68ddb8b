package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implSummarizer struct {
	model     string
	extractor extractor.Extractor
	generator Generator
	keys      *KeyPool
	logger    logger.Logger
	retries   int
	delay     time.Duration
	minWords  int
}

// New creates a Summarizer. The KeyPool is shared process-wide so that a
// quota exhaustion seen by one flow rotates the credential for all flows.
func New(cfg *config.Config, ext extractor.Extractor, gen Generator, keys *KeyPool, log logger.Logger) Summarizer {
	return &implSummarizer{
		model:     cfg.Gemini.Model,
		extractor: ext,
		generator: gen,
		keys:      keys,
		logger:    log,
		retries:   cfg.Gemini.Retries,
		delay:     time.Duration(cfg.Gemini.RetryDelaySeconds) * time.Second,
		minWords:  cfg.Gemini.MinSectionWords,
	}
}
