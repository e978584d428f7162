package dsl

import (
	"context"
	"sort"

	strux "github.com/spacejack/strux"
	"github.com/spacejack/strux/i18n"
	js "github.com/spacejack/strux/jsonschema"
)

// Props maps field names to their adapters.
type Props map[string]AnyAdapter

// Object returns an object schema whose declared fields are all required.
// Unknown keys are accepted and passed through into the decoded output; wrap
// the schema with strux.Strip to drop them.
func Object(name string, props Props) strux.Schema[map[string]any] {
	return newObjectSchema(name, "object", props, false)
}

// Partial returns an object schema whose declared fields are all optional.
// A declared field present with an explicit null stays present-with-nil in
// the decoded output; an omitted field stays absent.
func Partial(name string, props Props) strux.Schema[map[string]any] {
	return newObjectSchema(name, "partial", props, true)
}

func newObjectSchema(name, fallback string, props Props, partial bool) *objectSchema {
	if name == "" {
		name = fallback
	}
	fields := make(Props, len(props))
	keys := make([]string, 0, len(props))
	for k, ad := range props {
		fields[k] = ad
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &objectSchema{name: name, fields: fields, sortedKeys: keys, partial: partial}
}

type objectSchema struct {
	name       string
	fields     Props
	sortedKeys []string
	partial    bool
}

var _ strux.Schema[map[string]any] = (*objectSchema)(nil)
var _ strux.FieldBearer = (*objectSchema)(nil)

func (o *objectSchema) Name() string { return o.name }

func (o *objectSchema) Kind() strux.Kind {
	if o.partial {
		return strux.KindPartial
	}
	return strux.KindObject
}

// FieldNames returns the declared field names in ascending order.
func (o *objectSchema) FieldNames() []string {
	out := make([]string, len(o.sortedKeys))
	copy(out, o.sortedKeys)
	return out
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected object"}}
	}
	// Fresh shallow copy; unknown keys pass through, the input map is never
	// returned or mutated.
	out := make(map[string]any, len(src))
	for k, val := range src {
		out[k] = val
	}
	var iss strux.Issues
	for _, k := range o.sortedKeys {
		val, exists := src[k]
		if !exists {
			if o.partial {
				continue
			}
			iss = strux.AppendIssues(iss, strux.Issue{Path: "/" + k, Code: strux.CodeRequired, Message: i18n.T(strux.CodeRequired, nil), Hint: "required property missing"})
			if strux.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		if o.partial && val == nil {
			// explicitly supplied null on an optional field
			continue
		}
		parsed, err := o.fields[k].parse(ctx, val)
		if err != nil {
			iss = strux.AppendIssues(iss, rebaseIssues("/"+k, err)...)
			if strux.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	src, ok := v.(map[string]any)
	if !ok {
		return strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected object"}}
	}
	var iss strux.Issues
	for _, k := range o.sortedKeys {
		val, exists := src[k]
		if !exists {
			if o.partial {
				continue
			}
			iss = strux.AppendIssues(iss, strux.Issue{Path: "/" + k, Code: strux.CodeRequired, Message: i18n.T(strux.CodeRequired, nil), Hint: "required property missing"})
			if strux.IsFailFast(ctx) {
				return iss
			}
			continue
		}
		if o.partial && val == nil {
			continue
		}
		if err := o.fields[k].validate(ctx, val); err != nil {
			iss = strux.AppendIssues(iss, rebaseIssues("/"+k, err)...)
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

func (o *objectSchema) Encode(v map[string]any) any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = val
	}
	for _, k := range o.sortedKeys {
		val, exists := v[k]
		if !exists || val == nil {
			continue
		}
		out[k] = o.fields[k].encode(val)
	}
	return out
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for k, ad := range o.fields {
		if ad.jsonSchema != nil {
			if ps, err := ad.jsonSchema(); err == nil && ps != nil {
				props[k] = ps
				continue
			}
		}
		props[k] = &js.Schema{}
	}
	sch := &js.Schema{Type: "object", Properties: props, AdditionalProperties: true}
	if !o.partial {
		sch.Required = o.FieldNames()
	}
	return sch, nil
}
