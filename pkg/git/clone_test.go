//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSourceRepo creates a local repository with one commit on main and a dev branch.
func setupSourceRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %s: %s", strings.Join(args, " "), output)
	}

	run("init", "--initial-branch=main")
	run("config", "user.name", "Test User")
	run("config", "user.email", "test@example.com")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test Repository"), 0644))
	run("add", "README.md")
	run("commit", "-m", "Initial commit")
	run("branch", "dev")

	return dir
}

func TestGit_Clone(t *testing.T) {
	git := NewGit()
	source := setupSourceRepo(t)
	workDir := t.TempDir()

	result, err := git.Clone(CloneParams{
		Args:  []string{"clone", source, "copy", "-b", "dev"},
		Dir:   workDir,
		Stdio: AllStreams(StreamPipe),
	})
	require.NoError(t, err)
	assert.Equal(t, "git clone "+source+" copy -b dev", result.CommandLine)

	_, err = os.Stat(filepath.Join(workDir, "copy", ".git"))
	assert.NoError(t, err)

	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = filepath.Join(workDir, "copy")
	output, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(string(output)))
}

func TestGit_Clone_MissingBranch(t *testing.T) {
	git := NewGit()
	source := setupSourceRepo(t)
	workDir := t.TempDir()

	result, err := git.Clone(CloneParams{
		Args:  []string{"clone", source, "copy", "-b", "missing"},
		Dir:   workDir,
		Stdio: AllStreams(StreamPipe),
	})
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.Contains(t, result.Stderr, "missing")
	assert.Contains(t, err.Error(), "command: git clone")
}

func TestGit_Clone_IgnoredStreams(t *testing.T) {
	git := NewGit()
	workDir := t.TempDir()

	result, err := git.Clone(CloneParams{
		Args:  []string{"clone", filepath.Join(workDir, "does-not-exist"), "copy"},
		Dir:   workDir,
		Stdio: AllStreams(StreamIgnore),
	})
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.Empty(t, result.Stdout)
	assert.Empty(t, result.Stderr)
}
