// Package shorthand parses and validates GitHub short references of the form
// user/repo or user/repo#branch.
package shorthand

import (
	"regexp"
	"strings"
)

const branchDelimiter = "#"

var (
	userPattern   = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	repoPattern   = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	branchPattern = regexp.MustCompile(`^[^\s~^:?*\[\\]+$`)
)

// Reference identifies a hosted repository and an optional branch.
type Reference struct {
	User   string
	Repo   string
	Branch string
}

// String returns the shorthand form of the reference.
func (r Reference) String() string {
	s := r.User + "/" + r.Repo
	if r.Branch != "" {
		s += branchDelimiter + r.Branch
	}
	return s
}

// Object is the structured form of a shorthand accepted as input.
type Object struct {
	User   string
	Repo   string
	Branch string
}

// Context carries caller settings used while parsing.
type Context struct {
	// Branch is used when the shorthand does not name one.
	Branch string
}

// Parser interface provides shorthand parsing and validation.
type Parser interface {
	// Parse splits input into its parts. It never fails; use Validate on the result.
	Parse(input string, ctx Context) Reference

	// Validate reports whether ref is a complete and well formed reference.
	Validate(ref Reference) bool

	// Stringify renders an object as a shorthand string.
	Stringify(obj Object) string
}

type realParser struct{}

// NewParser creates a new Parser instance.
func NewParser() Parser {
	return &realParser{}
}

func (p *realParser) Parse(input string, ctx Context) Reference {
	input = strings.TrimSpace(input)

	var ref Reference
	// An empty branch after the delimiter counts as no branch.
	path, branch, _ := strings.Cut(input, branchDelimiter)
	ref.Branch = branch
	if ref.Branch == "" {
		ref.Branch = ctx.Branch
	}

	user, repo, ok := strings.Cut(path, "/")
	if !ok {
		// Keep the lone segment as the repository so callers can report it.
		ref.Repo = path
		return ref
	}
	ref.User = user
	ref.Repo = strings.TrimSuffix(repo, ".git")
	return ref
}

func (p *realParser) Validate(ref Reference) bool {
	if !userPattern.MatchString(ref.User) || !repoPattern.MatchString(ref.Repo) {
		return false
	}
	if ref.Repo == "." || ref.Repo == ".." {
		return false
	}
	if ref.Branch == "" {
		return true
	}
	return branchPattern.MatchString(ref.Branch) &&
		!strings.HasPrefix(ref.Branch, "-") &&
		!strings.Contains(ref.Branch, "..")
}

func (p *realParser) Stringify(obj Object) string {
	return Reference(obj).String()
}
