package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/codechunk/internal/config"
	"github.com/dshills/codechunk/internal/ingester"
	"github.com/dshills/codechunk/internal/output"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("codechunk\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		os.Exit(0)
	}

	// Log to stderr (stdout reserved for chunk records)
	log.SetOutput(os.Stderr)
	log.Printf("codechunk v%s starting...", version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Cancel the run on shutdown signals; in-flight per-file work is
	// simply abandoned, no internal state needs unwinding
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, cancelling...", sig)
		cancel()
	}()

	out := os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	log.Printf("Scanning files from %s...", cfg.RootPath)
	ing := ingester.New(cfg.IngesterConfig())
	chunks, stats, err := ing.Ingest(ctx, cfg.RootPath)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	for _, msg := range stats.ErrorMessages {
		log.Printf("Skipped file: %s", msg)
	}
	log.Printf("Found %d files and produced %d chunks in %s (%d failed, %d dropped)",
		stats.FilesScanned, stats.ChunksEmitted, stats.Duration, stats.FilesFailed, stats.ChunksDropped)

	written, err := output.NewJSONLWriter(out).WriteAll(chunks)
	if err != nil {
		log.Fatalf("Failed after writing %d records: %v", written, err)
	}

	log.Printf("Wrote %d chunk records", written)
}
