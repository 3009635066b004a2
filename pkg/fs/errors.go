package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrEmptyPath is returned when an operation that deletes data receives an empty path.
	ErrEmptyPath = errors.New("path cannot be empty")
)
