package strux

import (
	"context"

	js "github.com/spacejack/strux/jsonschema"
)

// Schema is an immutable descriptor of an expected value shape. Schemas are
// built once at initialization time and are safe for concurrent use; no
// operation mutates a schema after construction.
type Schema[T any] interface {
	// Name identifies the schema in error summaries.
	Name() string
	// Kind reports the schema's runtime shape tag.
	Kind() Kind

	// Parse decodes an arbitrary input into T. On failure it returns Issues
	// describing every offending path; the value result is the zero T.
	Parse(ctx context.Context, v any) (T, error)

	// Validate reports whether v conforms to the schema, without producing a
	// decoded value. It applies the same rules as Parse.
	Validate(ctx context.Context, v any) error

	// Encode re-serializes a conforming value back to its transmissible form.
	Encode(v T) any

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ---- Parse-time context options ----

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// Object-shaped schemas stop collecting issues after the first one when set.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
