package git

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Clone runs git with the given arguments and stdio disposition.
func (g *realGit) Clone(params CloneParams) (CloneResult, error) {
	result := CloneResult{
		CommandLine: strings.Join(append([]string{g.binary}, params.Args...), " "),
	}
	if len(params.Args) == 0 {
		return result, fmt.Errorf("%w: %w", ErrCloneFailed, ErrNoArguments)
	}

	cmd := exec.Command(g.binary, params.Args...)
	cmd.Dir = params.Dir
	if len(params.Env) > 0 {
		cmd.Env = append(os.Environ(), params.Env...)
	}

	stdio := params.Stdio.WithDefaults()
	var stdout, stderr bytes.Buffer
	if stdio.Stdin == StreamInherit {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = writerFor(stdio.Stdout, os.Stdout, &stdout)
	cmd.Stderr = writerFor(stdio.Stderr, os.Stderr, &stderr)

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if err != nil {
		return result, fmt.Errorf("%w: %w (command: %s, output: %s)",
			ErrCloneFailed, err, result.CommandLine, strings.TrimSpace(result.Stderr+result.Stdout))
	}
	return result, nil
}

// writerFor returns the writer matching a disposition. A nil writer sends
// the stream to the null device.
func writerFor(s Stream, inherited io.Writer, buf *bytes.Buffer) io.Writer {
	switch s {
	case StreamInherit:
		return inherited
	case StreamPipe:
		return buf
	default:
		return nil
	}
}
