package boundary

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dshills/codechunk/pkg/types"
)

// FallbackWindowLines is the fixed window size used for languages outside
// the heuristic families (markup, config, plain text).
const FallbackWindowLines = 200

// braceStart matches the start of a logical unit in the brace-block
// family: an optional export keyword followed by a declaration keyword.
// False positives (a const inside a string literal, a module-level data
// table) are an accepted limitation of the heuristic.
var braceStart = regexp.MustCompile(`^(export\s+)?(function |class |const |let |var )`)

// Detector computes logical-unit line ranges for a source file. It is a
// line-prefix heuristic, not a parser: it trades syntactic precision for
// speed and language-agnostic simplicity.
type Detector struct{}

// New creates a new Detector instance
func New() *Detector {
	return &Detector{}
}

// FindBoundaries returns the ordered, non-overlapping ranges covering
// [0, len(lines)) for the given language. Empty input yields no ranges.
//
// Heuristic families get definition-based splitting; all other languages
// get fixed windows of FallbackWindowLines lines.
func (d *Detector) FindBoundaries(lines []string, lang types.Language) []types.BoundaryRange {
	if len(lines) == 0 {
		return nil
	}

	switch lang.Family() {
	case types.FamilyIndent:
		return d.heuristicRanges(lines, isIndentStart, true)
	case types.FamilyBrace:
		return d.heuristicRanges(lines, isBraceStart, false)
	default:
		return windowRanges(len(lines), FallbackWindowLines)
	}
}

// heuristicRanges splits lines at detected start markers. withWalkBack
// enables the decorator walk-back of the indent family: each start is
// extended upward over immediately preceding @-lines so decorators stay
// attached to the definition they annotate.
//
// Starts are adjusted before ranges are built, so the range preceding a
// decorated definition ends where the decorator run begins and the
// coverage invariant holds. Adjusted starts remain strictly increasing
// because the walk-back stops at the previous definition line, which
// never begins with @.
func (d *Detector) heuristicRanges(lines []string, isStart func(string) bool, withWalkBack bool) []types.BoundaryRange {
	var starts []int
	for i, line := range lines {
		if isStart(lstrip(line)) {
			starts = append(starts, i)
		}
	}

	// No definitions anywhere: one range spanning the whole file. The
	// fixed-window fallback is language-gated, not emptiness-gated.
	if len(starts) == 0 {
		return []types.BoundaryRange{{Start: 0, End: len(lines)}}
	}

	if withWalkBack {
		for i, start := range starts {
			starts[i] = absorbDecorators(lines, start)
		}
	}

	var ranges []types.BoundaryRange

	// Module-level preamble (imports, top comments) before the first
	// detected definition becomes its own leading range.
	if starts[0] > 0 {
		ranges = append(ranges, types.BoundaryRange{Start: 0, End: starts[0]})
	}

	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		ranges = append(ranges, types.BoundaryRange{Start: start, End: end})
	}

	return ranges
}

// absorbDecorators walks backward from a detected start over contiguous
// decorator lines, returning the adjusted start. Implemented as an
// explicit index loop so pathological decorator stacks cannot exhaust
// the call stack.
func absorbDecorators(lines []string, start int) int {
	j := start - 1
	for j >= 0 && strings.HasPrefix(lstrip(lines[j]), "@") {
		j--
	}
	return j + 1
}

// windowRanges covers [0, total) with fixed-size windows; the last window
// may be shorter.
func windowRanges(total, size int) []types.BoundaryRange {
	ranges := make([]types.BoundaryRange, 0, (total+size-1)/size)
	for i := 0; i < total; i += size {
		end := i + size
		if end > total {
			end = total
		}
		ranges = append(ranges, types.BoundaryRange{Start: i, End: end})
	}
	return ranges
}

func isIndentStart(stripped string) bool {
	return strings.HasPrefix(stripped, "def ") || strings.HasPrefix(stripped, "class ")
}

func isBraceStart(stripped string) bool {
	return braceStart.MatchString(stripped)
}

func lstrip(line string) string {
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}
