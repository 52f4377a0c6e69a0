package types

import "errors"

// Domain errors for the chunking pipeline
var (
	// ErrPathResolution indicates a file could not be opened or read.
	// Failures are file-scoped: callers log, skip the file, and continue.
	ErrPathResolution = errors.New("path cannot be resolved")

	// Chunk validation errors
	ErrEmptyContent     = errors.New("chunk content cannot be empty")
	ErrInvalidLineRange = errors.New("chunk line range is invalid")
	ErrMissingPath      = errors.New("chunk path is required")
)
