package dsl_test

import (
	"reflect"
	"testing"

	strux "github.com/spacejack/strux"
	g "github.com/spacejack/strux/dsl"
)

func TestJSONSchema_ObjectExport(t *testing.T) {
	s := g.Object("User", g.Props{"id": g.StringOf(), "age": g.NumberOf()})
	sch, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sch.Type != "object" {
		t.Fatalf("unexpected type: %q", sch.Type)
	}
	if !reflect.DeepEqual(sch.Required, []string{"age", "id"}) {
		t.Fatalf("unexpected required list: %v", sch.Required)
	}
	if sch.Properties["id"].Type != "string" || sch.Properties["age"].Type != "number" {
		t.Fatalf("unexpected properties: %v", sch.Properties)
	}
	if sch.AdditionalProperties != true {
		t.Fatalf("plain object must accept unknown keys")
	}
}

func TestJSONSchema_PartialHasNoRequired(t *testing.T) {
	s := g.Partial("Opts", g.Props{"a": g.StringOf()})
	sch, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sch.Required) != 0 {
		t.Fatalf("partial must not require fields: %v", sch.Required)
	}
}

func TestJSONSchema_IntersectionAllOf(t *testing.T) {
	s := g.Intersection("",
		g.Object("A", g.Props{"a": g.StringOf()}),
		g.Partial("B", g.Props{"b": g.StringOf()}),
	)
	sch, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sch.AllOf) != 2 {
		t.Fatalf("expected allOf with two members: %v", sch.AllOf)
	}
}

func TestJSONSchema_StrippedClosesObject(t *testing.T) {
	s := strux.MustStrip(g.Object("User", g.Props{"id": g.StringOf()}))
	sch, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sch.AdditionalProperties != false {
		t.Fatalf("stripped schema must close additionalProperties")
	}
}
