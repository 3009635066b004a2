package gitclone

import (
	"slices"

	"github.com/lerenn/gitclone/pkg/git"
)

// Options configures a clone.
type Options struct {
	// SSH selects git@github.com: remotes instead of https://github.com/.
	SSH bool
	// Dest is used when no destination is given positionally.
	Dest string
	// Branch is checked out when the reference does not name one.
	Branch string
	// Stdio is forwarded to the process. Unset streams are inherited.
	Stdio git.Stdio

	// Dir, Env and Args are passed through to the process unchanged.
	// Args are appended to the command line after the branch flag.
	Dir  string
	Env  []string
	Args []string
}

func (o Options) clone() Options {
	o.Env = slices.Clone(o.Env)
	o.Args = slices.Clone(o.Args)
	return o
}

func optionsOrEmpty(o *Options) Options {
	if o == nil {
		return Options{}
	}
	return o.clone()
}
