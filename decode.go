package strux

import (
	"bytes"
	"context"
	"errors"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON document and validates it against the schema.
// Numbers are preserved as json.Number. Malformed JSON surfaces as Issues
// with CodeParseError; validation failures are the schema's own Issues.
func DecodeJSON[T any](ctx context.Context, s Schema[T], data []byte) (T, error) {
	return DecodeJSONReader(ctx, s, bytes.NewReader(data))
}

// DecodeJSONReader is like DecodeJSON but consumes an io.Reader.
func DecodeJSONReader[T any](ctx context.Context, s Schema[T], r io.Reader) (T, error) {
	var zero T
	if s == nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: "nil schema"}}
	}
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	// A JSON document is a single value; anything after it is an error.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: "unexpected trailing content"}}
	}
	return s.Parse(ctx, v)
}

// DecodeYAML decodes the first YAML document in data and validates it against
// the schema. YAML maps with non-string keys are normalized to the JSON-like
// map[string]any form before validation; entries with non-string keys are
// dropped.
func DecodeYAML[T any](ctx context.Context, s Schema[T], data []byte) (T, error) {
	var zero T
	if s == nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: "nil schema"}}
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return s.Parse(ctx, yamlNormalizeValue(v))
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
