// Package output emits chunk records in the downstream indexing format.
package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/codechunk/pkg/types"
)

// JSONLWriter writes chunk records as one JSON object per line. The
// record layout is the downstream contract: {source, path, filename,
// language, chunk_type, line_start, line_end, text}.
type JSONLWriter struct {
	encoder *json.Encoder
}

// NewJSONLWriter creates a JSONLWriter targeting w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

// Write emits a single chunk record.
func (w *JSONLWriter) Write(chunk *types.Chunk) error {
	return w.encoder.Encode(chunk)
}

// WriteAll emits chunks in order, stopping at the first write error and
// returning the number of records written.
func (w *JSONLWriter) WriteAll(chunks []*types.Chunk) (int, error) {
	for i, chunk := range chunks {
		if err := w.Write(chunk); err != nil {
			return i, err
		}
	}
	return len(chunks), nil
}
