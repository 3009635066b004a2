package gitclone

import (
	"strings"

	"github.com/lerenn/gitclone/pkg/git"
	"github.com/lerenn/gitclone/pkg/shorthand"
)

const (
	httpsRoot = "https://github.com/"
	sshRoot   = "git@github.com:"
)

// BuiltCommand is a clone command ready to run.
type BuiltCommand struct {
	// CommandLine is the full command, e.g. "git clone https://github.com/foo/bar.git".
	CommandLine string
	// Args are the git arguments, starting with "clone".
	Args []string
	// Destination is the directory the clone creates.
	Destination string
	Reference   shorthand.Reference
	// Options has its stdio defaulted.
	Options Options
}

// Build constructs the clone command for req. It is deterministic and has no side effects.
func Build(req NormalizedRequest) BuiltCommand {
	opts := req.Options.clone()
	opts.Stdio = opts.Stdio.WithDefaults()

	dest := req.Destination
	if dest == "" {
		dest = opts.Dest
	}

	root := httpsRoot
	if opts.SSH {
		root = sshRoot
	}

	args := []string{"clone", root + req.Reference.User + "/" + req.Reference.Repo + ".git"}
	if dest != "" {
		args = append(args, dest)
	}
	if req.Reference.Branch != "" {
		args = append(args, "-b", req.Reference.Branch)
	}
	args = append(args, opts.Args...)

	if dest == "" {
		dest = req.Reference.Repo
	}

	return BuiltCommand{
		CommandLine: "git " + strings.Join(args, " "),
		Args:        args,
		Destination: dest,
		Reference:   req.Reference,
		Options:     opts,
	}
}

// Params returns the execution parameters of the command.
func (b BuiltCommand) Params() git.CloneParams {
	return git.CloneParams{
		Args:  b.Args,
		Dir:   b.Options.Dir,
		Env:   b.Options.Env,
		Stdio: b.Options.Stdio,
	}
}
