package dsl

import (
	"context"

	strux "github.com/spacejack/strux"
	js "github.com/spacejack/strux/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed wrapper so differently typed
// field schemas can live in one Props mapping. It keeps the original schema
// to support JSON Schema export and introspection.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	validate   func(context.Context, any) error
	encode     func(any) any
	jsonSchema func() (*js.Schema, error)
	orig       any
}

// SchemaOf wraps a strongly typed Schema[T] as an AnyAdapter for Props.
func SchemaOf[T any](s strux.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validate: func(ctx context.Context, v any) error {
			return s.Validate(ctx, v)
		},
		encode: func(v any) any {
			tv, ok := v.(T)
			if !ok {
				return v
			}
			return s.Encode(tv)
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// Orig returns the original underlying schema used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Nullable wraps the adapter to accept explicit nulls for both parse and
// validate. A nil input parses to nil without consulting the underlying
// schema.
func (ad AnyAdapter) Nullable() AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validate
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prevParse(ctx, v)
	}
	out.validate = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		return prevValidate(ctx, v)
	}
	return out
}

// StringOf returns an AnyAdapter for the string schema.
func StringOf() AnyAdapter { return SchemaOf[string](String()) }

// BoolOf returns an AnyAdapter for the bool schema.
func BoolOf() AnyAdapter { return SchemaOf[bool](Bool()) }

// NumberOf returns an AnyAdapter for the number schema.
func NumberOf() AnyAdapter { return SchemaOf(Number()) }

// ArrayOf returns an AnyAdapter for an array of elem.
func ArrayOf(elem AnyAdapter) AnyAdapter { return SchemaOf(Array(elem)) }

// rebaseIssues rewrites child issue paths under the given base pointer.
// Non-Issues errors are wrapped as a parse error at base.
func rebaseIssues(base string, err error) strux.Issues {
	child, ok := strux.AsIssues(err)
	if !ok {
		return strux.Issues{{Path: base, Code: strux.CodeParseError, Message: err.Error(), Cause: err}}
	}
	var out strux.Issues
	for _, it := range child {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		out = strux.AppendIssues(out, strux.Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}
