package strux

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeParseError  = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error. It is
// the failure branch of every decode: ordered, never thrown, always returned
// as a value.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Contract-violation sentinels. These signal API misuse by the caller, not
// malformed input, and are never mixed into Issues.
var (
	// ErrUnsupportedKind is returned by Strip for schema kinds it cannot
	// transform.
	ErrUnsupportedKind = errors.New("strux: strip expects an object, partial, or intersection schema")
	// ErrNoFields is returned by FieldKeys when a schema (or an intersection
	// member) exposes no declared field mapping.
	ErrNoFields = errors.New("strux: schema does not declare fields")
)

// ConstructionError wraps a decode failure for the construct-style entry
// points. Name carries the "<schema name> type error" summary; Issues carries
// the full ordered validation records from the failed decode.
type ConstructionError struct {
	Name   string
	Issues Issues
}

func (e *ConstructionError) Error() string {
	if len(e.Issues) == 0 {
		return e.Name
	}
	return e.Name + ": " + e.Issues.Error()
}

// Unwrap exposes the underlying Issues so errors.As reaches them.
func (e *ConstructionError) Unwrap() error { return e.Issues }
