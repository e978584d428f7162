package strux

import (
	"context"
	"fmt"

	js "github.com/spacejack/strux/jsonschema"
)

// Strip derives a schema whose successful decode output is a freshly built
// map containing only the fields the source schema declares. Validation,
// failure behavior, name, conformance testing and re-encoding are inherited
// from the source unchanged; only the success payload is rebuilt.
//
// Only object, partial, and intersection schemas can be stripped; any other
// kind fails with an error wrapping ErrUnsupportedKind.
func Strip(s Schema[map[string]any]) (Schema[map[string]any], error) {
	switch s.Kind() {
	case KindObject, KindPartial, KindIntersection:
	default:
		return nil, fmt.Errorf("%w, got %q (%s)", ErrUnsupportedKind, s.Name(), s.Kind())
	}
	keys, err := FieldKeys(s)
	if err != nil {
		return nil, err
	}
	// Required-object decode guarantees every declared key is present, so the
	// copy is unconditional; partial and intersection fields may legitimately
	// be absent and are copied only when the decoded map owns the key.
	return &strippedSchema{source: s, keys: keys, copyAll: s.Kind() == KindObject}, nil
}

// MustStrip is like Strip but panics on error.
func MustStrip(s Schema[map[string]any]) Schema[map[string]any] {
	out, err := Strip(s)
	if err != nil {
		panic(err)
	}
	return out
}

type strippedSchema struct {
	source  Schema[map[string]any]
	keys    []string
	copyAll bool
}

var _ Schema[map[string]any] = (*strippedSchema)(nil)
var _ FieldBearer = (*strippedSchema)(nil)

func (s *strippedSchema) Name() string { return s.source.Name() }
func (s *strippedSchema) Kind() Kind   { return s.source.Kind() }

func (s *strippedSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, err := s.source.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(s.keys))
	for _, k := range s.keys {
		if val, ok := m[k]; ok {
			out[k] = val
		} else if s.copyAll {
			out[k] = nil
		}
	}
	return out, nil
}

func (s *strippedSchema) Validate(ctx context.Context, v any) error {
	return s.source.Validate(ctx, v)
}

func (s *strippedSchema) Encode(v map[string]any) any { return s.source.Encode(v) }

// FieldNames keeps stripped schemas introspectable, which also makes Strip
// idempotent.
func (s *strippedSchema) FieldNames() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *strippedSchema) JSONSchema() (*js.Schema, error) {
	sch, err := s.source.JSONSchema()
	if err != nil {
		return nil, err
	}
	// Declared fields are the only ones that survive decoding.
	sch.AdditionalProperties = false
	return sch, nil
}
