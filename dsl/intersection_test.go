package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	strux "github.com/spacejack/strux"
	g "github.com/spacejack/strux/dsl"
)

func TestIntersection_MergesMemberOutputs(t *testing.T) {
	ctx := context.Background()
	s := g.Intersection("Event",
		g.Object("", g.Props{"title": g.StringOf()}),
		g.Partial("", g.Props{"duration": g.NumberOf()}),
	)

	out, err := s.Parse(ctx, map[string]any{"title": "x", "duration": json.Number("5")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["title"] != "x" || out["duration"] != json.Number("5") {
		t.Fatalf("unexpected merge: %v", out)
	}
}

func TestIntersection_AggregatesIssuesAcrossMembers(t *testing.T) {
	ctx := context.Background()
	s := g.Intersection("Event",
		g.Object("", g.Props{"title": g.StringOf()}),
		g.Object("", g.Props{"venue": g.StringOf()}),
	)

	_, err := s.Parse(ctx, map[string]any{})
	iss, _ := strux.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected issues from every member, got %v", iss)
	}
}

func TestIntersection_DerivedName(t *testing.T) {
	s := g.Intersection("",
		g.Object("A", g.Props{"a": g.StringOf()}),
		g.Partial("B", g.Props{"b": g.StringOf()}),
	)
	if s.Name() != "(A & B)" {
		t.Fatalf("unexpected derived name: %q", s.Name())
	}
}

func TestObjectWithOptionals(t *testing.T) {
	ctx := context.Background()
	s := g.ObjectWithOptionals("Event",
		g.Props{"title": g.StringOf()},
		g.Props{"duration": g.NumberOf()},
	)
	if s.Name() != "Event" || s.Kind() != strux.KindIntersection {
		t.Fatalf("unexpected identity: %q %v", s.Name(), s.Kind())
	}

	if _, err := s.Parse(ctx, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("optional field must be omittable: %v", err)
	}
	if _, err := s.Parse(ctx, map[string]any{"duration": json.Number("5")}); err == nil {
		t.Fatalf("required field must stay required")
	}
}

func TestIntersection_MembersOrdered(t *testing.T) {
	a := g.Object("A", g.Props{"a": g.StringOf()})
	b := g.Partial("B", g.Props{"b": g.StringOf()})
	s := g.Intersection("AB", a, b)

	mb, ok := s.(strux.MemberBearer)
	if !ok {
		t.Fatalf("intersection must expose its members")
	}
	ms := mb.Members()
	if len(ms) != 2 || ms[0].Name() != "A" || ms[1].Name() != "B" {
		t.Fatalf("unexpected members: %v", ms)
	}
}
