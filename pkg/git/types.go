package git

// CloneParams contains parameters for Clone.
type CloneParams struct {
	// Args are passed to git verbatim, e.g. {"clone", "https://github.com/foo/bar.git", "dir"}.
	Args []string
	// Dir is the working directory of the process. Empty means the current one.
	Dir string
	// Env is appended to the current process environment.
	Env []string
	// Stdio selects how the process streams are connected.
	Stdio Stdio
}

// CloneResult describes a finished clone process.
type CloneResult struct {
	CommandLine string
	// Stdout and Stderr are only filled for piped streams.
	Stdout string
	Stderr string
}
