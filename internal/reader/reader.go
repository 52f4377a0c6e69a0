// Package reader loads source files as verbatim line sequences.
package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/dshills/codechunk/pkg/types"
)

// ReadLines reads a file and returns its lines with line terminators and
// all leading/trailing whitespace preserved exactly as stored on disk.
// A final line without a trailing newline is returned as-is.
//
// Decoding is permissive: invalid UTF-8 byte sequences are dropped and
// never fail the read. The only failure mode is the file being unreadable
// (missing, permission denied), reported as types.ErrPathResolution.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrPathResolution, path, err)
	}
	return SplitLines(sanitize(content)), nil
}

// SplitLines splits text into lines, keeping the terminator on each line.
// Unlike strings.Split this never produces a trailing empty element for
// input ending in a newline, and an empty input yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// sanitize drops invalid UTF-8 sequences, mirroring a best-effort text
// decode. Valid input is returned unchanged without copying.
func sanitize(content []byte) string {
	return strings.ToValidUTF8(string(content), "")
}
