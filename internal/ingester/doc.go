// Package ingester coordinates repository ingestion: walk -> chunk -> emit.
//
// The ingester discovers eligible files under a root directory using an
// extension allow-list and a directory exclude-list, then runs the
// per-file chunking pipeline across a bounded worker pool. Chunking holds
// no shared mutable state, so the pool needs no locking beyond the
// statistics counters.
//
// # Failure Policy
//
// Failures are file-scoped and non-fatal: an unreadable file is recorded
// in Statistics.ErrorMessages and the rest of the batch continues. Only
// context cancellation or a failed walk aborts a run.
//
// # Basic Usage
//
//	ing := ingester.New(nil)
//	chunks, stats, err := ing.Ingest(ctx, "/path/to/repo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("%d files -> %d chunks (%d failed)",
//	    stats.FilesScanned, stats.ChunksEmitted, stats.FilesFailed)
package ingester
