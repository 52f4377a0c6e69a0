package chunker

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dshills/codechunk/internal/boundary"
	"github.com/dshills/codechunk/internal/language"
	"github.com/dshills/codechunk/internal/reader"
	"github.com/dshills/codechunk/pkg/types"
)

// DefaultMaxLines is the maximum number of source lines per chunk.
// Boundaries larger than this are subdivided into multiple chunks.
const DefaultMaxLines = 400

// Chunker turns source files into bounded chunks with line-range
// provenance
type Chunker struct {
	classifier *language.Classifier
	detector   *boundary.Detector
	maxLines   int
}

// New creates a Chunker with the default size bound
func New() *Chunker {
	return NewWithMaxLines(DefaultMaxLines)
}

// NewWithMaxLines creates a Chunker with a custom per-chunk line bound.
// Non-positive values fall back to DefaultMaxLines.
func NewWithMaxLines(maxLines int) *Chunker {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Chunker{
		classifier: language.New(),
		detector:   boundary.New(),
		maxLines:   maxLines,
	}
}

// ChunkFile runs the full per-file pipeline: classify the path, read its
// lines, detect boundaries, and assemble chunks. The only failure mode is
// the upstream read; chunk production itself cannot fail.
func (c *Chunker) ChunkFile(path string) ([]*types.Chunk, error) {
	lang := c.classifier.Classify(path)

	lines, err := reader.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ranges := c.detector.FindBoundaries(lines, lang)
	return c.Assemble(path, lines, lang, ranges), nil
}

// Assemble slides a window of at most maxLines across each boundary
// range, left-to-right and non-overlapping, emitting one chunk per
// non-empty window. Windows whose right-trimmed content is empty are
// dropped without emitting a chunk, absorbing blank regions between
// logical blocks.
//
// Emitted line numbers are 1-based and inclusive on both ends.
func (c *Chunker) Assemble(path string, lines []string, lang types.Language, ranges []types.BoundaryRange) []*types.Chunk {
	chunks := make([]*types.Chunk, 0, len(ranges))
	filename := filepath.Base(path)
	chunkType := lang.ChunkType()

	for _, r := range ranges {
		for cur := r.Start; cur < r.End; {
			end := cur + c.maxLines
			if end > r.End {
				end = r.End
			}

			// Lines keep their terminators, so the join separator is empty.
			content := strings.TrimRightFunc(strings.Join(lines[cur:end], ""), unicode.IsSpace)
			if content == "" {
				cur = end
				continue
			}

			chunk := &types.Chunk{
				Source:    path,
				Path:      path,
				Filename:  filename,
				Language:  lang,
				ChunkType: chunkType,
				LineStart: cur + 1,
				LineEnd:   end,
				Content:   content,
			}
			chunk.ComputeContentHash()
			chunk.ComputeTokenCount()

			chunks = append(chunks, chunk)
			cur = end
		}
	}

	return chunks
}
