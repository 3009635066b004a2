package git

import (
	"fmt"
	"strings"
)

// Stream is the disposition of one standard stream of the git process.
type Stream string

// Stream dispositions. The zero value is treated as StreamInherit.
const (
	StreamInherit Stream = "inherit"
	StreamIgnore  Stream = "ignore"
	StreamPipe    Stream = "pipe"
)

// ParseStream converts a configuration value to a Stream.
func ParseStream(value string) (Stream, error) {
	switch s := Stream(strings.ToLower(strings.TrimSpace(value))); s {
	case StreamInherit, StreamIgnore, StreamPipe:
		return s, nil
	case "":
		return StreamInherit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStream, value)
	}
}

// Stdio holds the disposition of stdin, stdout and stderr.
type Stdio struct {
	Stdin  Stream
	Stdout Stream
	Stderr Stream
}

// AllStreams returns a Stdio using s for the three streams.
func AllStreams(s Stream) Stdio {
	return Stdio{Stdin: s, Stdout: s, Stderr: s}
}

// IsZero reports whether no stream has been configured.
func (s Stdio) IsZero() bool {
	return s == Stdio{}
}

// WithDefaults returns a copy where unset streams are inherited.
func (s Stdio) WithDefaults() Stdio {
	if s.Stdin == "" {
		s.Stdin = StreamInherit
	}
	if s.Stdout == "" {
		s.Stdout = StreamInherit
	}
	if s.Stderr == "" {
		s.Stderr = StreamInherit
	}
	return s
}

// Suppressed reports whether none of the three streams reaches the terminal.
func (s Stdio) Suppressed() bool {
	d := s.WithDefaults()
	return d.Stdin != StreamInherit && d.Stdout != StreamInherit && d.Stderr != StreamInherit
}

// String renders the dispositions as stdin,stdout,stderr.
func (s Stdio) String() string {
	d := s.WithDefaults()
	return string(d.Stdin) + "," + string(d.Stdout) + "," + string(d.Stderr)
}
