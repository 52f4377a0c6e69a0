// Package types provides shared type definitions for the codechunk engine.
//
// This package defines the domain types used across the chunking pipeline:
// languages, boundary ranges, and chunks.
//
// # Core Types
//
// Language is the tag derived from a file's extension. It selects the
// boundary-detection heuristic family and the chunk type:
//
//	lang := types.LangPython
//	lang.ChunkType() // types.ChunkCode
//
// BoundaryRange is a half-open [Start, End) interval over 0-based line
// indices, representing one logical unit of a source file (a function, a
// class, or a fallback window):
//
//	r := types.BoundaryRange{Start: 0, End: 12}
//	r.Len() // 12
//
// Chunk is the unit of output handed to the downstream indexing
// collaborator. Line numbers are 1-based and inclusive:
//
//	chunk := &types.Chunk{
//	    Path:      "backend/app.py",
//	    Filename:  "app.py",
//	    Language:  types.LangPython,
//	    ChunkType: types.ChunkCode,
//	    LineStart: 3,
//	    LineEnd:   41,
//	    Content:   body,
//	}
//
// # Provenance and Citations
//
// Every chunk carries the full provenance tuple {path, filename, language,
// chunk_type, line_start, line_end} plus a Source identity key (the file
// path) used by the downstream indexer for incremental re-indexing and
// deduplication. Citation renders the human-readable form used when
// answering questions:
//
//	chunk.Citation() // "app.py[3-41]"
//
// # Content Hashing
//
// Each chunk computes a SHA-256 hash of its content:
//
//	chunk.ComputeContentHash()
//	// chunk.ContentHash is now [32]byte SHA-256 hash
//
// This enables the downstream indexer to detect unchanged chunks across
// repeated ingestion runs of the same repository.
//
// # Validation
//
// Chunks implement validation to ensure data integrity before they are
// emitted:
//
//	if err := chunk.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
