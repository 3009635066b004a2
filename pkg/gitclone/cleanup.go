package gitclone

import (
	"path/filepath"
	"strings"
)

// cleanup removes the top level directory of a failed clone.
// Removal errors are ignored so that the execution error reaches the caller.
func (c *realCloner) cleanup(cmd BuiltCommand) {
	if cmd.Options.Stdio.Suppressed() {
		c.deps.Output.Logf("fatal: Remote branch %s not found in upstream origin", branchName(cmd))
	}

	dir := topLevelSegment(cmd.Destination)
	if dir == "" {
		c.VerbosePrint("Skipping cleanup of destination %q", cmd.Destination)
		return
	}
	if cmd.Options.Dir != "" {
		dir = filepath.Join(cmd.Options.Dir, dir)
	}

	c.VerbosePrint("Removing %s after failed clone", dir)
	_ = c.deps.FS.RemoveAll(dir)
}

// topLevelSegment returns the first component of the cleaned destination.
// It is empty for absolute paths and for paths resolving to the working directory or above.
func topLevelSegment(dest string) string {
	if dest == "" || filepath.IsAbs(dest) {
		return ""
	}
	segment, _, _ := strings.Cut(filepath.ToSlash(filepath.Clean(dest)), "/")
	if segment == "" || segment == "." || segment == ".." {
		return ""
	}
	return segment
}

func branchName(cmd BuiltCommand) string {
	if cmd.Reference.Branch == "" {
		return "HEAD"
	}
	return cmd.Reference.Branch
}
