package fs

import (
	"fmt"
	"os"
)

// RemoveAll removes path and any children it contains.
// A missing path is not an error.
func (f *realFS) RemoveAll(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
