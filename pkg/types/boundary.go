package types

import "fmt"

// BoundaryRange is a half-open interval [Start, End) over 0-based line
// indices of one source file, representing a single logical unit: one
// function, one class, or one fixed-size fallback window.
type BoundaryRange struct {
	Start int // First line index (inclusive)
	End   int // One past the last line index (exclusive)
}

// Len returns the number of lines covered by the range.
func (r BoundaryRange) Len() int {
	return r.End - r.Start
}

// Validate checks that the range is well-formed.
func (r BoundaryRange) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("boundary start %d is negative", r.Start)
	}
	if r.End <= r.Start {
		return fmt.Errorf("boundary [%d, %d) is empty or inverted", r.Start, r.End)
	}
	return nil
}

// ValidateCoverage checks the detector's output invariant: ranges are
// non-overlapping, in ascending start order, and collectively cover
// [0, totalLines) with no gaps.
func ValidateCoverage(ranges []BoundaryRange, totalLines int) error {
	if totalLines == 0 {
		if len(ranges) != 0 {
			return fmt.Errorf("expected no ranges for empty input, got %d", len(ranges))
		}
		return nil
	}
	if len(ranges) == 0 {
		return fmt.Errorf("no ranges cover %d lines", totalLines)
	}

	next := 0
	for i, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("range %d: %w", i, err)
		}
		if r.Start != next {
			return fmt.Errorf("range %d starts at %d, expected %d", i, r.Start, next)
		}
		next = r.End
	}

	if next != totalLines {
		return fmt.Errorf("ranges end at %d, expected %d", next, totalLines)
	}
	return nil
}
