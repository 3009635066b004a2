package gitclone

import (
	"sync"

	"github.com/lerenn/gitclone/pkg/dependencies"
	"github.com/lerenn/gitclone/pkg/git"
	"github.com/lerenn/gitclone/pkg/logger"
)

// Cloner interface provides the clone entry points.
type Cloner interface {
	// Clone normalizes req, runs git clone and blocks until it settles.
	// On execution failure the top level destination directory is removed
	// and the execution error is returned unchanged.
	Clone(req Request) (git.CloneResult, error)

	// CloneAsync validates req synchronously, then runs the clone in the background.
	// The outcome is delivered once on the returned channel and, when callback is
	// non-nil, to callback before the channel receives it.
	CloneAsync(req Request, callback Callback) (<-chan Outcome, error)

	// Prepare returns the command Clone would run, without running it.
	Prepare(req Request) (BuiltCommand, error)

	// Run executes a prepared command with the same cleanup as Clone.
	Run(cmd BuiltCommand) (git.CloneResult, error)

	// SetLogger sets the logger receiving verbose messages.
	SetLogger(logger logger.Logger)
}

// Callback receives the outcome of an asynchronous clone.
type Callback func(result git.CloneResult, err error)

// Outcome is the settled result of an asynchronous clone.
type Outcome struct {
	Result git.CloneResult
	Err    error
}

// NewClonerParams contains parameters for creating a new Cloner instance.
type NewClonerParams struct {
	Dependencies *dependencies.Dependencies
}

type realCloner struct {
	deps dependencies.Dependencies

	mu     sync.RWMutex
	logger logger.Logger
}

// NewCloner creates a new Cloner instance.
func NewCloner(params NewClonerParams) (Cloner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	// The container is copied so SetLogger never reaches other cloners sharing it.
	return &realCloner{
		deps:   *deps,
		logger: deps.Logger,
	}, nil
}

// Clone is a shortcut creating a Cloner with default dependencies.
func Clone(req Request) (git.CloneResult, error) {
	c, err := NewCloner(NewClonerParams{})
	if err != nil {
		return git.CloneResult{}, err
	}
	return c.Clone(req)
}

// VerbosePrint logs a formatted message using the current logger.
func (c *realCloner) VerbosePrint(msg string, args ...interface{}) {
	c.mu.RLock()
	l := c.logger
	c.mu.RUnlock()
	l.Logf(msg, args...)
}

func (c *realCloner) SetLogger(logger logger.Logger) {
	if logger == nil {
		return
	}
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

func (c *realCloner) Prepare(req Request) (BuiltCommand, error) {
	normalized, err := Normalize(c.deps.Parser, req)
	if err != nil {
		return BuiltCommand{}, err
	}
	c.VerbosePrint("Normalized reference: %s", normalized.Reference)

	cmd := Build(normalized)
	c.VerbosePrint("Command: %s (destination: %s, stdio: %s)", cmd.CommandLine, cmd.Destination, cmd.Options.Stdio)
	return cmd, nil
}

func (c *realCloner) Clone(req Request) (git.CloneResult, error) {
	cmd, err := c.Prepare(req)
	if err != nil {
		return git.CloneResult{}, err
	}
	return c.Run(cmd)
}

func (c *realCloner) CloneAsync(req Request, callback Callback) (<-chan Outcome, error) {
	cmd, err := c.Prepare(req)
	if err != nil {
		return nil, err
	}

	outcomes := make(chan Outcome, 1)
	go func() {
		defer close(outcomes)
		result, err := c.Run(cmd)
		if callback != nil {
			callback(result, err)
		}
		outcomes <- Outcome{Result: result, Err: err}
	}()
	return outcomes, nil
}

// Run executes cmd and cleans up its destination on failure.
func (c *realCloner) Run(cmd BuiltCommand) (git.CloneResult, error) {
	c.VerbosePrint("Starting repository clone: %s", cmd.Reference)

	result, err := c.deps.Git.Clone(cmd.Params())
	if err != nil {
		c.cleanup(cmd)
		return result, err
	}

	c.VerbosePrint("Repository cloned into %s", cmd.Destination)
	return result, nil
}
