// Package binding implements the binding-path grammar shared between the
// designer and the print engine:
//
//	""                               static field
//	<field>                          header field (bare form)
//	header.<field>                   header field
//	contentDetails.<source>.<field>  object-typed content detail
//
// Array-typed content details bind as bare field names scoped to their table,
// never through the dotted form. Any other dotted path cannot be checked
// against sample data and is accepted as-is.
package binding

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

const (
	headerPrefix        = "header."
	contentDetailPrefix = "contentDetails."

	// MissingValue is the literal the editor shows for a bound value absent
	// from sample data. It is distinct from the empty string a static field
	// without a value renders as: the placeholder keeps the element visible
	// and measurable in the layout preview.
	MissingValue = "[Value]"

	// Page counters are resolved by the print engine; the designer emits the
	// renderer's placeholder tokens.
	pageNumberToken = "{page}"
	totalPagesToken = "{pages}"
)

// Validate checks a bind path against the sample shapes. A nil return means
// the path is valid (or unverifiable and therefore accepted). Validation
// never blocks editing; callers surface the error text as a warning.
func Validate(path string, p sample.Payload) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	if strings.HasPrefix(path, contentDetailPrefix) || path == strings.TrimSuffix(contentDetailPrefix, ".") {
		return validateContentDetail(path, p)
	}

	if strings.HasPrefix(path, headerPrefix) {
		return validateHeaderField(strings.TrimPrefix(path, headerPrefix), p)
	}

	if strings.Contains(path, ".") {
		// Dotted paths outside the known prefixes cannot be checked against
		// sample data; accept them.
		return nil
	}

	return validateHeaderField(path, p)
}

func validateHeaderField(field string, p sample.Payload) error {
	if p.Header.HasField(field) {
		return nil
	}
	return &UnknownHeaderFieldError{Field: field, Available: p.Header.Fields}
}

func validateContentDetail(path string, p sample.Payload) error {
	segments := strings.Split(path, ".")
	if len(segments) != 3 {
		return &MalformedContentDetailPathError{Path: path, Segments: len(segments)}
	}
	name, field := segments[1], segments[2]

	src, ok := p.ContentDetail(name)
	if !ok {
		return &UnknownContentDetailSourceError{Source: name, Available: objectSourceNames(p)}
	}
	if src.DataType != sample.DataTypeObject {
		return &UnknownContentDetailSourceError{Source: name, DataType: string(src.DataType), Available: objectSourceNames(p)}
	}
	if !src.HasField(field) {
		return &UnknownContentDetailFieldError{Source: name, Field: field, Available: src.Fields}
	}
	return nil
}

func objectSourceNames(p sample.Payload) []string {
	var names []string
	for _, name := range p.ContentDetailNames() {
		if p.ContentDetails[name].DataType == sample.DataTypeObject {
			names = append(names, name)
		}
	}
	return names
}

// Resolve computes the display value of a field for the layout preview.
// Computed field types win over the bind path; a bound path missing from the
// sample data renders the MissingValue placeholder; an unbound field falls
// back to its static value.
func Resolve(field domain.Field, p sample.Payload, clk clock.Clock) string {
	switch field.FieldType {
	case domain.FieldTypeCurrentDate:
		return clk.Now().Format("2006-01-02")
	case domain.FieldTypeCurrentTime:
		return clk.Now().Format("15:04:05")
	case domain.FieldTypePageNumber:
		return pageNumberToken
	case domain.FieldTypeTotalPages:
		return totalPagesToken
	}

	bind := strings.TrimSpace(field.Bind)
	if bind == "" {
		return field.Value
	}

	value, ok := lookup(bind, p)
	if !ok || value == nil {
		return MissingValue
	}
	return Format(value)
}

// ResolveCell computes the display value of a table cell for one data row.
// The bind's dotted prefix (if any) is stripped and the last segment keys the
// row; missing and null values render the MissingValue placeholder.
func ResolveCell(bind string, row map[string]any) string {
	key := lastSegment(bind)
	if key == "" {
		return MissingValue
	}
	value, ok := row[key]
	if !ok || value == nil {
		return MissingValue
	}
	return Format(value)
}

func lookup(bind string, p sample.Payload) (any, bool) {
	if strings.HasPrefix(bind, contentDetailPrefix) {
		segments := strings.Split(bind, ".")
		if len(segments) != 3 {
			return nil, false
		}
		src, ok := p.ContentDetail(segments[1])
		if !ok {
			return nil, false
		}
		obj := src.Object()
		if obj == nil {
			return nil, false
		}
		value, ok := obj[segments[2]]
		return value, ok
	}

	key := lastSegment(bind)
	value, ok := p.Header.Data[key]
	return value, ok
}

func lastSegment(path string) string {
	path = strings.TrimSpace(path)
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// Format renders a sample value the way the preview displays it. JSON numbers
// arrive as float64; integral values print without a decimal point.
func Format(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		if typed == float64(int64(typed)) {
			return fmt.Sprintf("%d", int64(typed))
		}
		return fmt.Sprintf("%g", typed)
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", typed)
	}
}
