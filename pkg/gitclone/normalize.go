package gitclone

import (
	"fmt"
	"strings"

	"github.com/lerenn/gitclone/pkg/shorthand"
)

// NormalizedRequest is a request with its reference parsed and its options resolved.
type NormalizedRequest struct {
	Reference shorthand.Reference
	// Destination is the positional destination, or Options.Dest for object requests.
	Destination string
	Options     Options
}

// Normalize resolves a request into a NormalizedRequest. It has no side effects.
func Normalize(parser shorthand.Parser, req Request) (NormalizedRequest, error) {
	var (
		input string
		dest  string
		opts  Options
	)

	switch r := req.(type) {
	case ByString:
		if strings.TrimSpace(r.Reference) == "" {
			return NormalizedRequest{}, fmt.Errorf("%w: repository reference is empty", ErrInvalidArgument)
		}
		input, dest, opts = r.Reference, r.Dest, optionsOrEmpty(r.Options)
		if r.Options != nil && r.SSH != nil {
			opts.SSH = *r.SSH
		}
	case *ByString:
		if r == nil {
			return NormalizedRequest{}, fmt.Errorf("%w: request is nil", ErrInvalidArgument)
		}
		return Normalize(parser, *r)
	case ByObject:
		if r.Reference.isZero() {
			return NormalizedRequest{}, fmt.Errorf("%w: repository object is empty", ErrInvalidArgument)
		}
		input, dest, opts = resolveObject(parser, r)
	case *ByObject:
		if r == nil {
			return NormalizedRequest{}, fmt.Errorf("%w: request is nil", ErrInvalidArgument)
		}
		return Normalize(parser, *r)
	default:
		return NormalizedRequest{}, fmt.Errorf("%w: unsupported request %T", ErrInvalidArgument, req)
	}

	if err := checkDestination(dest); err != nil {
		return NormalizedRequest{}, err
	}
	if err := checkDestination(opts.Dest); err != nil {
		return NormalizedRequest{}, err
	}

	ref := parser.Parse(input, shorthand.Context{Branch: opts.Branch})
	if !parser.Validate(ref) {
		return NormalizedRequest{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, input)
	}

	return NormalizedRequest{
		Reference:   ref,
		Destination: dest,
		Options:     opts,
	}, nil
}

// resolveObject returns the shorthand, destination and options of an object request.
func resolveObject(parser shorthand.Parser, r ByObject) (string, string, Options) {
	input := parser.Stringify(shorthand.Object{
		User:   r.Reference.User,
		Repo:   r.Reference.Repo,
		Branch: r.Reference.Branch,
	})

	var opts Options
	switch {
	case r.Options != nil:
		opts = r.Options.clone()
		if r.SSH != nil {
			opts.SSH = *r.SSH
		}
	case r.Reference.Options != nil:
		opts = r.Reference.Options.clone()
	}

	return input, opts.Dest, opts
}

// checkDestination refuses destinations git would read as an option.
func checkDestination(dest string) error {
	if strings.HasPrefix(dest, "-") {
		return fmt.Errorf("%w: destination %q looks like an option", ErrInvalidArgument, dest)
	}
	return nil
}
