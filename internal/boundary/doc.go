// Package boundary detects logical-unit line ranges in source files.
//
// The detector is deliberately not a parser. It matches line prefixes to
// find where functions and classes begin, and derives each unit's range
// from the next detected start. Wrong guesses cost a suboptimal split,
// never a wrong line number.
//
// # Heuristic Families
//
// Three rule sets exist, selected by language tag:
//
//   - Indent family (python): a boundary starts at a line whose stripped
//     form begins with "def " or "class ". Decorator lines immediately
//     above a start are absorbed into its range.
//   - Brace family (javascript, typescript): a boundary starts at a line
//     matching an optional "export" followed by "function ", "class ",
//     "const ", "let ", or "var ".
//   - Everything else: fixed 200-line windows covering the file.
//
// # Invariants
//
// For any input the returned ranges are in ascending start order,
// non-overlapping, and exactly cover [0, len(lines)). Files with no
// detected definitions produce a single whole-file range; content before
// the first definition produces a leading preamble range.
//
// # Basic Usage
//
//	d := boundary.New()
//	ranges := d.FindBoundaries(lines, types.LangPython)
//	for _, r := range ranges {
//	    fmt.Printf("unit spans lines %d-%d\n", r.Start+1, r.End)
//	}
package boundary
