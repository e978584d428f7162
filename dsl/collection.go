package dsl

import (
	"context"
	"strconv"

	strux "github.com/spacejack/strux"
	"github.com/spacejack/strux/i18n"
	js "github.com/spacejack/strux/jsonschema"
)

// Array returns a schema for an array whose elements all conform to elem.
func Array(elem AnyAdapter) strux.Schema[[]any] {
	return &arraySchema{elem: elem}
}

// MapAny returns a sparse passthrough map schema: any object conforms and
// decodes to a fresh copy of itself. It declares no fields, so it cannot be
// stripped or introspected.
func MapAny() strux.Schema[map[string]any] {
	return mapAnySchema{}
}

type arraySchema struct {
	elem AnyAdapter
}

var _ strux.Schema[[]any] = (*arraySchema)(nil)

func (a *arraySchema) Name() string     { return "array" }
func (a *arraySchema) Kind() strux.Kind { return strux.KindArray }

func (a *arraySchema) Parse(ctx context.Context, v any) ([]any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected array"}}
	}
	out := make([]any, len(src))
	var iss strux.Issues
	for i, val := range src {
		parsed, err := a.elem.parse(ctx, val)
		if err != nil {
			iss = strux.AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
			if strux.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[i] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *arraySchema) Validate(ctx context.Context, v any) error {
	src, ok := v.([]any)
	if !ok {
		return strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected array"}}
	}
	var iss strux.Issues
	for i, val := range src {
		if err := a.elem.validate(ctx, val); err != nil {
			iss = strux.AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
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

func (a *arraySchema) Encode(v []any) any {
	out := make([]any, len(v))
	for i, val := range v {
		out[i] = a.elem.encode(val)
	}
	return out
}

func (a *arraySchema) JSONSchema() (*js.Schema, error) {
	var items *js.Schema
	if a.elem.jsonSchema != nil {
		if es, err := a.elem.jsonSchema(); err == nil {
			items = es
		}
	}
	return &js.Schema{Type: "array", Items: items}, nil
}

type mapAnySchema struct{}

var _ strux.Schema[map[string]any] = mapAnySchema{}

func (mapAnySchema) Name() string     { return "map" }
func (mapAnySchema) Kind() strux.Kind { return strux.KindMap }

func (mapAnySchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected object"}}
	}
	out := make(map[string]any, len(src))
	for k, val := range src {
		out[k] = val
	}
	return out, nil
}

func (s mapAnySchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (mapAnySchema) Encode(v map[string]any) any { return v }

func (mapAnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", AdditionalProperties: true}, nil
}
