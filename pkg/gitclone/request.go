package gitclone

// Request is one of the accepted call shapes: ByString or ByObject.
type Request interface {
	isRequest()
}

// ByString clones from a shorthand string.
//
//	ByString{Reference: "foo/bar#dev", Dest: "mydir", Options: &Options{SSH: true}}
type ByString struct {
	Reference string
	// Dest wins over Options.Dest when both are set.
	Dest    string
	Options *Options
	// SSH overrides Options.SSH. It is ignored when Options is nil.
	SSH *bool
}

// ByObject clones from a structured reference.
//
//	ByObject{Reference: Object{User: "a", Repo: "b"}, Options: &Options{Dest: "c"}}
type ByObject struct {
	Reference Object
	// Options takes precedence over Reference.Options.
	Options *Options
	// SSH overrides Options.SSH. It is ignored when Options is nil.
	SSH *bool
}

// Object is a structured repository reference with its own optional settings.
type Object struct {
	User    string
	Repo    string
	Branch  string
	Options *Options
}

func (ByString) isRequest() {}
func (ByObject) isRequest() {}

func (o Object) isZero() bool {
	return o.User == "" && o.Repo == "" && o.Branch == ""
}
