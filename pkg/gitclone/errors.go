// Package gitclone clones GitHub repositories from shorthand references such as
// user/repo or user/repo#branch, removing the partial destination when the clone fails.
package gitclone

import (
	"errors"

	"github.com/lerenn/gitclone/pkg/git"
)

// Error definitions for gitclone package.
var (
	// ErrInvalidArgument is returned when the repository argument is missing.
	ErrInvalidArgument = errors.New("should have at least 1 argument")

	// ErrInvalidFormat is returned when the reference is not a valid shorthand.
	ErrInvalidFormat = errors.New("expect repo to be user/repo(#branch) string")

	// ErrExecution is returned when the clone process failed to start or exited non-zero.
	ErrExecution = git.ErrCloneFailed
)
