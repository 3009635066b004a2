package git

import "errors"

// Git-specific error types.
var (
	ErrCloneFailed   = errors.New("git clone failed")
	ErrNoArguments   = errors.New("no git arguments given")
	ErrUnknownStream = errors.New("unknown stdio disposition")
)
