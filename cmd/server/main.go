package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/ingest"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/processor"
	"github.com/nguyentantai21042004/summary-flow/internal/server"
	"github.com/nguyentantai21042004/summary-flow/internal/store"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/watcher"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The key pool is shared process-wide so a quota exhaustion in any
	// flow rotates the credential for all flows.
	keys := summarizer.NewKeyPool(cfg.Gemini.APIKeys)

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Summarizer Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s (%d API keys)", cfg.Gemini.Model, keys.Size())
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Open the document store
	st, err := store.New(cfg.Storage.Path, log)
	if err != nil {
		log.Error(ctx, "Failed to open document store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	// Initialize dependencies
	sum := summarizer.New(cfg, extractor.New(), summarizer.NewGeminiGenerator(), keys, log)
	proc := processor.New(cfg, sum, st, log)
	ing := ingest.New(cfg.Paths.Raw, log)
	srv := server.New(cfg, proc, ing, st, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)

	// Optionally watch the inbox directory for dropped-in documents. The
	// inbox is distinct from the raw directory where the HTTP handlers
	// stage uploads, so an upload is never processed twice.
	if cfg.Performance.WatchInbox {
		w, err := watcher.New(cfg.Paths.Inbox, func(ctx context.Context, path string) error {
			_, err := proc.Process(ctx, path, "")
			return err
		}, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()
		log.Info(ctx, "Watching inbox directory: %s", cfg.Paths.Inbox)
	}

	// Start HTTP server
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Summarizer is ready!")
	log.Info(ctx, "Listening on %s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info(ctx, "Raw uploads: %s", cfg.Paths.Raw)
	log.Info(ctx, "Summaries: %s", cfg.Paths.Summaries)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "HTTP shutdown error: %v", err)
	}

	log.Info(ctx, "Document Summarizer stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Raw,
		cfg.Paths.Inbox,
		cfg.Paths.Processed,
		cfg.Paths.Summaries,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
