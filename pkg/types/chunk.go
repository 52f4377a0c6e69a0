package types

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ChunkType distinguishes programming-language content from markup,
// config, and plain-text content
type ChunkType string

const (
	ChunkCode  ChunkType = "code"
	ChunkProse ChunkType = "prose"
)

// Chunk represents a size-bounded, non-empty slice of a boundary range
// with attached provenance metadata. It is the unit handed to the
// downstream embedding/indexing collaborator and is immutable once
// created.
//
// The JSON field names form the downstream record contract: the metadata
// set attached to the text plus the per-chunk identity key ("source",
// conventionally the file path) used for incremental re-indexing.
type Chunk struct {
	// Identity
	Source   string `json:"source"`
	Path     string `json:"path"`
	Filename string `json:"filename"`

	// Classification
	Language  Language  `json:"language"`
	ChunkType ChunkType `json:"chunk_type"`

	// Location, 1-based inclusive on both ends
	LineStart int `json:"line_start"`
	LineEnd   int `json:"line_end"`

	// Content, joined and right-trimmed
	Content string `json:"text"`

	// Dedup aids, not part of the emitted record
	ContentHash [32]byte `json:"-"` // SHA-256 of Content
	TokenCount  int      `json:"-"` // chars/4 estimate
}

// Citation renders the human-readable citation for the chunk's origin,
// e.g. "app.py[3-41]".
func (c *Chunk) Citation() string {
	return fmt.Sprintf("%s[%d-%d]", c.Filename, c.LineStart, c.LineEnd)
}

// ComputeContentHash computes the SHA-256 hash of the chunk content
func (c *Chunk) ComputeContentHash() {
	c.ContentHash = sha256.Sum256([]byte(c.Content))
}

// ComputeTokenCount estimates the number of tokens in the chunk
// using a simple heuristic: characters / 4
func (c *Chunk) ComputeTokenCount() int {
	c.TokenCount = len(c.Content) / 4
	return c.TokenCount
}

// Validate performs comprehensive validation of the chunk
func (c *Chunk) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrEmptyContent
	}
	if c.LineStart <= 0 || c.LineEnd <= 0 || c.LineStart > c.LineEnd {
		return ErrInvalidLineRange
	}
	if c.Path == "" || c.Source == "" {
		return ErrMissingPath
	}
	return nil
}
