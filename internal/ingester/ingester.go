package ingester

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/codechunk/internal/chunker"
	"github.com/dshills/codechunk/internal/language"
	"github.com/dshills/codechunk/pkg/types"
)

// ErrIngestInProgress is returned when an ingestion run is started while
// another run on the same Ingester has not finished.
var ErrIngestInProgress = errors.New("ingestion already in progress")

// DefaultMinChunkChars is the minimum content length a chunk must exceed
// to be worth indexing.
const DefaultMinChunkChars = 10

// DefaultExcludeDirs are directory names skipped during the walk:
// dependency caches, virtual environments, build output, and VCS state.
var DefaultExcludeDirs = []string{
	"node_modules", "venv", ".venv", "dist", "build", "__pycache__", ".git",
}

// Config contains configuration for an ingestion run
type Config struct {
	Workers       int      // Number of concurrent workers (default: runtime.NumCPU())
	MaxLines      int      // Per-chunk line bound (default: chunker.DefaultMaxLines)
	MinChunkChars int      // Chunks with content this short or shorter are dropped
	IncludeExts   []string // Extension allow-list (default: the classifier's table)
	ExcludeDirs   []string // Directory names to skip (default: DefaultExcludeDirs)
}

// Statistics contains statistics about an ingestion run
type Statistics struct {
	FilesScanned  int
	FilesChunked  int
	FilesFailed   int
	ChunksEmitted int
	ChunksDropped int
	Duration      time.Duration
	ErrorMessages []string
}

// Ingester walks a repository root and chunks every eligible file.
// Per-file chunking is stateless, so files are processed concurrently;
// failures are file-scoped and never abort the run.
type Ingester struct {
	chunker     *chunker.Chunker
	includeExts map[string]struct{}
	excludeDirs map[string]struct{}
	minChars    int
	workers     int
	lock        IngestLock
}

// New creates an Ingester from a Config. A nil config uses all defaults.
func New(config *Config) *Ingester {
	if config == nil {
		config = &Config{}
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	minChars := config.MinChunkChars
	if minChars <= 0 {
		minChars = DefaultMinChunkChars
	}

	exts := config.IncludeExts
	if len(exts) == 0 {
		exts = language.New().Extensions()
	}
	includeExts := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		includeExts[strings.ToLower(ext)] = struct{}{}
	}

	dirs := config.ExcludeDirs
	if len(dirs) == 0 {
		dirs = DefaultExcludeDirs
	}
	excludeDirs := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		excludeDirs[dir] = struct{}{}
	}

	return &Ingester{
		chunker:     chunker.NewWithMaxLines(config.MaxLines),
		includeExts: includeExts,
		excludeDirs: excludeDirs,
		minChars:    minChars,
		workers:     workers,
	}
}

// Ingest chunks every eligible file under rootPath and returns the chunk
// sequence plus run statistics. Chunks appear in walk order, with each
// file's chunks in ascending line order, so repeated runs over an
// unchanged tree produce identical output.
func (ing *Ingester) Ingest(ctx context.Context, rootPath string) ([]*types.Chunk, *Statistics, error) {
	if !ing.lock.TryAcquire() {
		return nil, nil, ErrIngestInProgress
	}
	defer ing.lock.Release()

	startTime := time.Now()
	stats := &Statistics{ErrorMessages: make([]string, 0)}

	files, err := ing.discoverFiles(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discover files: %w", err)
	}
	stats.FilesScanned = len(files)

	chunks, err := ing.chunkFiles(ctx, files, stats)
	if err != nil {
		return nil, nil, err
	}

	stats.Duration = time.Since(startTime)
	return chunks, stats, nil
}

// discoverFiles finds all eligible files under the root, honoring the
// extension allow-list and the directory exclude-list
func (ing *Ingester) discoverFiles(rootPath string) ([]string, error) {
	var files []string

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, excluded := ing.excludeDirs[info.Name()]; excluded && path != rootPath {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := ing.includeExts[ext]; !ok {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// chunkFiles chunks files concurrently with a bounded worker pool.
// Results land in per-file slots so output order matches walk order
// regardless of worker scheduling.
func (ing *Ingester) chunkFiles(ctx context.Context, files []string, stats *Statistics) ([]*types.Chunk, error) {
	results := make([][]*types.Chunk, len(files))

	var (
		chunked int32
		failed  int32
		dropped int32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.workers)
	var mu sync.Mutex // Protects stats.ErrorMessages

	for i, filePath := range files {
		i, filePath := i, filePath
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileChunks, err := ing.chunker.ChunkFile(filePath)
			if err != nil {
				// File-scoped failure: record and continue with the batch
				atomic.AddInt32(&failed, 1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", filePath, err))
				mu.Unlock()
				return nil
			}

			kept := fileChunks[:0]
			for _, chunk := range fileChunks {
				if len(chunk.Content) <= ing.minChars {
					atomic.AddInt32(&dropped, 1)
					continue
				}
				kept = append(kept, chunk)
			}

			results[i] = kept
			atomic.AddInt32(&chunked, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var chunks []*types.Chunk
	for _, fileChunks := range results {
		chunks = append(chunks, fileChunks...)
	}

	stats.FilesChunked = int(chunked)
	stats.FilesFailed = int(failed)
	stats.ChunksDropped = int(dropped)
	stats.ChunksEmitted = len(chunks)

	return chunks, nil
}
