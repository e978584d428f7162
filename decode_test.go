package strux_test

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	strux "github.com/spacejack/strux"
	g "github.com/spacejack/strux/dsl"
)

func TestDecodeJSON_StripRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := strux.MustStrip(g.ObjectWithOptionals("Event",
		g.Props{"title": g.StringOf()},
		g.Props{"duration": g.NumberOf()},
	))

	out, err := strux.DecodeJSON(ctx, s, []byte(`{"title":"x","duration":5,"extra":true}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"title": "x", "duration": json.Number("5")}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestDecodeJSON_MalformedInput(t *testing.T) {
	ctx := context.Background()
	s := g.Object("User", g.Props{"id": g.StringOf()})

	_, err := strux.DecodeJSON(ctx, s, []byte(`{"id":`))
	iss, ok := strux.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != strux.CodeParseError {
		t.Fatalf("expected parse_error issues, got %v", err)
	}
}

func TestDecodeJSON_TrailingContent(t *testing.T) {
	ctx := context.Background()
	s := g.Object("User", g.Props{"id": g.StringOf()})

	_, err := strux.DecodeJSON(ctx, s, []byte(`{"id":"a"} {"id":"b"}`))
	iss, ok := strux.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != strux.CodeParseError {
		t.Fatalf("expected parse_error for trailing content, got %v", err)
	}
}

func TestDecodeJSONReader_ValidationIssuesPassThrough(t *testing.T) {
	ctx := context.Background()
	s := g.Object("User", g.Props{"id": g.StringOf()})

	_, err := strux.DecodeJSONReader(ctx, s, strings.NewReader(`{"id":42}`))
	iss, ok := strux.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Path != "/id" || iss[0].Code != strux.CodeInvalidType {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestDecodeYAML_NormalizesAndValidates(t *testing.T) {
	ctx := context.Background()
	s := strux.MustStrip(g.Object("Config", g.Props{
		"name":  g.StringOf(),
		"count": g.NumberOf(),
	}))

	out, err := strux.DecodeYAML(ctx, s, []byte("name: demo\ncount: 3\nextra: dropped\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["name"] != "demo" {
		t.Fatalf("unexpected name: %v", out["name"])
	}
	if out["count"] != json.Number("3") {
		t.Fatalf("expected yaml integer normalized to json.Number, got %T %v", out["count"], out["count"])
	}
	if _, ok := out["extra"]; ok {
		t.Fatalf("undeclared key survived: %v", out)
	}
}

func TestDecodeYAML_Malformed(t *testing.T) {
	ctx := context.Background()
	s := g.MapAny()
	_, err := strux.DecodeYAML(ctx, s, []byte("a: [unclosed"))
	iss, ok := strux.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != strux.CodeParseError {
		t.Fatalf("expected parse_error issues, got %v", err)
	}
}
