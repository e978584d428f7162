package dsl_test

import (
	"context"
	"testing"

	strux "github.com/spacejack/strux"
	g "github.com/spacejack/strux/dsl"
)

func TestPartial_OmittedFieldsAllowed(t *testing.T) {
	ctx := context.Background()
	s := g.Partial("Opts", g.Props{"a": g.StringOf(), "b": g.StringOf()})

	out, err := s.Parse(ctx, map[string]any{"a": "x"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := out["b"]; ok {
		t.Fatalf("omitted field materialized: %v", out)
	}
}

func TestPartial_ExplicitNullKeepsPresence(t *testing.T) {
	ctx := context.Background()
	s := g.Partial("Opts", g.Props{"a": g.StringOf()})

	out, err := s.Parse(ctx, map[string]any{"a": nil})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, ok := out["a"]; !ok || v != nil {
		t.Fatalf("explicit null lost: %v", out)
	}
}

func TestPartial_PresentFieldStillValidated(t *testing.T) {
	ctx := context.Background()
	s := g.Partial("Opts", g.Props{"a": g.StringOf()})

	_, err := s.Parse(ctx, map[string]any{"a": 42})
	iss, _ := strux.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/a" || iss[0].Code != strux.CodeInvalidType {
		t.Fatalf("unexpected issues: %v", iss)
	}
}
