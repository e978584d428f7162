package dsl

import (
	"context"
	"encoding/json"
	"strconv"

	strux "github.com/spacejack/strux"
	"github.com/spacejack/strux/i18n"
	js "github.com/spacejack/strux/jsonschema"
)

// String returns the minimal string schema implementation.
func String() strux.Schema[string] { return stringSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() strux.Schema[bool] { return boolSchema{} }

// Number returns the number schema. Values are preserved as json.Number;
// float64 and integer inputs (as produced by YAML decoding) are converted.
func Number() strux.Schema[json.Number] { return numberSchema{} }

type stringSchema struct{}

func (stringSchema) Name() string     { return "string" }
func (stringSchema) Kind() strux.Kind { return strux.KindString }

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (s stringSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (stringSchema) Encode(v string) any { return v }

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type boolSchema struct{}

func (boolSchema) Name() string     { return "boolean" }
func (boolSchema) Kind() strux.Kind { return strux.KindBool }

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return b, nil
}

func (s boolSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (boolSchema) Encode(v bool) any { return v }

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type numberSchema struct{}

func (numberSchema) Name() string     { return "number" }
func (numberSchema) Kind() strux.Kind { return strux.KindNumber }

func (numberSchema) Parse(ctx context.Context, v any) (json.Number, error) {
	switch n := v.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	case int:
		return json.Number(strconv.Itoa(n)), nil
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), nil
	default:
		return json.Number(""), strux.Issues{{Path: "/", Code: strux.CodeInvalidType, Message: i18n.T(strux.CodeInvalidType, nil), Hint: "expected number"}}
	}
}

func (s numberSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (numberSchema) Encode(v json.Number) any { return v }

func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }
