// Package git runs the git binary on behalf of gitclone.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// Clone executes `git <args>` where args start with the clone subcommand.
	// It blocks until the process exits and fails on spawn errors or a non-zero exit.
	Clone(params CloneParams) (CloneResult, error)
}

type realGit struct {
	binary string
}

// NewGit creates a new Git instance using the git binary found in PATH.
func NewGit() Git {
	return &realGit{binary: "git"}
}

// NewGitWithBinary creates a Git instance running the given executable.
func NewGitWithBinary(binary string) Git {
	return &realGit{binary: binary}
}
