package dsl

import (
	"context"
	"strings"

	strux "github.com/spacejack/strux"
	js "github.com/spacejack/strux/jsonschema"
)

// Intersection combines several object-shaped schemas; a value conforms when
// it conforms to every member. Decoding runs each member against the same
// input, aggregates all members' issues in order, and merges the member
// outputs (later members win on overlapping keys). An empty name derives one
// from the members: "(A & B)".
func Intersection(name string, members ...strux.Schema[map[string]any]) strux.Schema[map[string]any] {
	if name == "" {
		parts := make([]string, len(members))
		for i, m := range members {
			parts[i] = m.Name()
		}
		name = "(" + strings.Join(parts, " & ") + ")"
	}
	ms := make([]strux.Schema[map[string]any], len(members))
	copy(ms, members)
	return &intersectionSchema{name: name, members: ms}
}

// ObjectWithOptionals is sugar for the common object with required and
// optional field groups, built as Intersection(Object(required),
// Partial(optional)).
func ObjectWithOptionals(name string, required, optional Props) strux.Schema[map[string]any] {
	return Intersection(name, Object("", required), Partial("", optional))
}

type intersectionSchema struct {
	name    string
	members []strux.Schema[map[string]any]
}

var _ strux.Schema[map[string]any] = (*intersectionSchema)(nil)
var _ strux.MemberBearer = (*intersectionSchema)(nil)

func (s *intersectionSchema) Name() string     { return s.name }
func (s *intersectionSchema) Kind() strux.Kind { return strux.KindIntersection }

// Members returns the ordered member sequence.
func (s *intersectionSchema) Members() []strux.Schema[map[string]any] {
	out := make([]strux.Schema[map[string]any], len(s.members))
	copy(out, s.members)
	return out
}

func (s *intersectionSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	out := map[string]any{}
	var iss strux.Issues
	for _, m := range s.members {
		mv, err := m.Parse(ctx, v)
		if err != nil {
			if child, ok := strux.AsIssues(err); ok {
				iss = strux.AppendIssues(iss, child...)
			} else {
				iss = strux.AppendIssues(iss, strux.Issue{Path: "/", Code: strux.CodeParseError, Message: err.Error(), Cause: err})
			}
			if strux.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		for k, val := range mv {
			out[k] = val
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *intersectionSchema) Validate(ctx context.Context, v any) error {
	var iss strux.Issues
	for _, m := range s.members {
		if err := m.Validate(ctx, v); err != nil {
			if child, ok := strux.AsIssues(err); ok {
				iss = strux.AppendIssues(iss, child...)
			} else {
				iss = strux.AppendIssues(iss, strux.Issue{Path: "/", Code: strux.CodeParseError, Message: err.Error(), Cause: err})
			}
			if strux.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *intersectionSchema) Encode(v map[string]any) any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = val
	}
	for _, m := range s.members {
		if enc, ok := m.Encode(v).(map[string]any); ok {
			for k, val := range enc {
				out[k] = val
			}
		}
	}
	return out
}

func (s *intersectionSchema) JSONSchema() (*js.Schema, error) {
	all := make([]*js.Schema, 0, len(s.members))
	for _, m := range s.members {
		ms, err := m.JSONSchema()
		if err != nil {
			return nil, err
		}
		all = append(all, ms)
	}
	return &js.Schema{AllOf: all}, nil
}
