package binding

import (
	"fmt"
	"strings"
)

// Validation errors are advisory: the designer stores an invalid bind as-is
// and surfaces the message as a warning. Each error names what is missing and
// lists what is available so the warning is actionable.

// UnknownHeaderFieldError reports a bind that names a field absent from the
// header sample.
type UnknownHeaderFieldError struct {
	Field     string
	Available []string
}

func (e *UnknownHeaderFieldError) Error() string {
	return fmt.Sprintf("unknown header field %q (available: %s)", e.Field, joinOrNone(e.Available))
}

// UnknownContentDetailSourceError reports a dotted bind whose source name has
// no matching content-detail entry, or one whose entry is not object-typed.
type UnknownContentDetailSourceError struct {
	Source    string
	DataType  string // set when the source exists but is not object-typed
	Available []string
}

func (e *UnknownContentDetailSourceError) Error() string {
	if e.DataType != "" {
		return fmt.Sprintf("content detail %q is %s-typed; bind its fields as table columns instead (object sources: %s)", e.Source, e.DataType, joinOrNone(e.Available))
	}
	return fmt.Sprintf("unknown content detail source %q (available: %s)", e.Source, joinOrNone(e.Available))
}

// UnknownContentDetailFieldError reports a dotted bind whose field is absent
// from the named content-detail source.
type UnknownContentDetailFieldError struct {
	Source    string
	Field     string
	Available []string
}

func (e *UnknownContentDetailFieldError) Error() string {
	return fmt.Sprintf("content detail %q has no field %q (available: %s)", e.Source, e.Field, joinOrNone(e.Available))
}

// MalformedContentDetailPathError reports a contentDetails bind that does not
// have exactly three dot-separated segments.
type MalformedContentDetailPathError struct {
	Path     string
	Segments int
}

func (e *MalformedContentDetailPathError) Error() string {
	return fmt.Sprintf("malformed content detail path %q: expected contentDetails.<source>.<field>, got %d segments", e.Path, e.Segments)
}

func joinOrNone(fields []string) string {
	if len(fields) == 0 {
		return "none"
	}
	return strings.Join(fields, ", ")
}
