// Package dependencies provides the dependency container used by gitclone.
// Collaborators are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/gitclone/pkg/fs"
	"github.com/lerenn/gitclone/pkg/git"
	"github.com/lerenn/gitclone/pkg/logger"
	"github.com/lerenn/gitclone/pkg/shorthand"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrGitMissing    = errors.New("git dependency is required but not set")
	ErrParserMissing = errors.New("parser dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrOutputMissing = errors.New("output dependency is required but not set")
)

// Dependencies holds the collaborators of a clone.
type Dependencies struct {
	// FS removes partially cloned destinations.
	FS fs.FS
	// Git runs the clone process.
	Git git.Git
	// Parser turns shorthand references into structured ones.
	Parser shorthand.Parser
	// Logger receives verbose progress messages.
	Logger logger.Logger
	// Output receives user facing diagnostics.
	Output logger.Logger
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Parser: shorthand.NewParser(),
		Logger: logger.NewNoopLogger(),
		Output: logger.NewDefaultLogger(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithParser sets the shorthand parser and returns the instance for chaining.
func (d *Dependencies) WithParser(parser shorthand.Parser) *Dependencies {
	d.Parser = parser
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithOutput sets the diagnostic output and returns the instance for chaining.
func (d *Dependencies) WithOutput(output logger.Logger) *Dependencies {
	d.Output = output
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Git == nil {
		return ErrGitMissing
	}
	if d.Parser == nil {
		return ErrParserMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Output == nil {
		return ErrOutputMissing
	}
	return nil
}
