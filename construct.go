package strux

import (
	"context"
)

// Construct decodes v with any schema, wrapping a decode failure in a
// *ConstructionError instead of returning raw Issues. It performs no field
// narrowing; use WithFactory for that. It is the explicit-schema replacement
// for a construct method installed on every schema instance.
func Construct[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, constructionError(s.Name(), err)
	}
	return val, nil
}

// MustConstruct is like Construct but panics on error. Intended for
// initialization-time values known to be valid.
func MustConstruct[T any](ctx context.Context, s Schema[T], v any) T {
	val, err := Construct(ctx, s, v)
	if err != nil {
		panic(err)
	}
	return val
}

// WithFactory wraps a structural schema with a Construct operation that also
// narrows the decoded value to the schema's declared fields. Field
// introspection happens once, at wrap time; a schema whose fields cannot be
// introspected fails here rather than on every construction.
func WithFactory(s Schema[map[string]any]) (*Factory, error) {
	keys, err := FieldKeys(s)
	if err != nil {
		return nil, err
	}
	return &Factory{Schema: s, keys: keys}, nil
}

// MustWithFactory is like WithFactory but panics on error.
func MustWithFactory(s Schema[map[string]any]) *Factory {
	f, err := WithFactory(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Factory augments a structural schema with construct-style entry points. The
// embedded schema remains fully usable as-is.
type Factory struct {
	Schema[map[string]any]
	keys []string
}

// Construct decodes v, narrows the result to the declared field set, and
// returns a fresh map. A decode failure is returned as a *ConstructionError
// carrying the full issue sequence.
func (f *Factory) Construct(ctx context.Context, v any) (map[string]any, error) {
	m, err := f.Schema.Parse(ctx, v)
	if err != nil {
		return nil, constructionError(f.Schema.Name(), err)
	}
	out := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		if val, ok := m[k]; ok {
			out[k] = val
		}
	}
	return out, nil
}

// MustConstruct is like Construct but panics on error.
func (f *Factory) MustConstruct(ctx context.Context, v any) map[string]any {
	m, err := f.Construct(ctx, v)
	if err != nil {
		panic(err)
	}
	return m
}

func constructionError(name string, err error) *ConstructionError {
	iss, _ := AsIssues(err)
	return &ConstructionError{Name: name + " type error", Issues: iss}
}
