package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ to user's home directory.
// Only a bare "~" or a "~/" prefix is expanded; "~user" forms are returned unchanged.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
