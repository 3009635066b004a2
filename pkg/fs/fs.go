// Package fs provides the file system operations used around a clone:
// removing a partially created destination, and reading or writing configuration.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file through a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// RemoveAll removes a path and everything below it.
	RemoveAll(path string) error

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands a leading ~ to the user's home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance backed by the os package.
func NewFS() FS {
	return &realFS{}
}

func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}
