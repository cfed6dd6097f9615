package jsonschema_test

import (
	"testing"

	"github.com/oarkflow/jsonschema"
)

func TestAllOfRequiresEveryBranch(t *testing.T) {
	h := mustHandle(t, `{"allOf": [{"type": "string"}, {"minLength": 3}]}`)
	if !h.Valid(mustValue(t, `"abcd"`)) {
		t.Error("expected a long enough string to satisfy both branches")
	}
	errs, err := h.Validate(mustValue(t, `"ab"`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 1 || errs[0].Type != "allOf" {
		t.Fatalf("expected a single allOf error, got %+v", errs)
	}
	if len(errs[0].Subschemas) != 2 {
		t.Fatalf("expected 2 subschema results, got %d", len(errs[0].Subschemas))
	}
	if len(errs[0].Subschemas[0].Errors()) != 0 {
		t.Error("branch 0 (type: string) should have passed for a string instance")
	}
	if len(errs[0].Subschemas[1].Errors()) == 0 {
		t.Error("branch 1 (minLength: 3) should have failed for \"ab\"")
	}
}

func TestAnyOfPassesIfOneBranchMatches(t *testing.T) {
	h := mustHandle(t, `{"anyOf": [{"type": "string"}, {"type": "integer"}]}`)
	if !h.Valid(mustValue(t, `"x"`)) {
		t.Error("expected a string to satisfy anyOf[string, integer]")
	}
	if !h.Valid(mustValue(t, `5`)) {
		t.Error("expected an integer to satisfy anyOf[string, integer]")
	}
	if h.Valid(mustValue(t, `true`)) {
		t.Error("expected a boolean to fail anyOf[string, integer]")
	}
}

func TestOneOfExactlyOneMustMatch(t *testing.T) {
	h := mustHandle(t, `{"oneOf": [{"multipleOf": 2}, {"multipleOf": 3}]}`)
	if !h.Valid(mustValue(t, `4`)) {
		t.Error("4 is a multiple of 2 only: should satisfy oneOf")
	}
	if h.Valid(mustValue(t, `6`)) {
		t.Error("6 is a multiple of both 2 and 3: should fail oneOf")
	}
	if h.Valid(mustValue(t, `5`)) {
		t.Error("5 is a multiple of neither: should fail oneOf")
	}
}

func TestNotRejectsMatchingInstances(t *testing.T) {
	h := mustHandle(t, `{"not": {"type": "string"}}`)
	if h.Valid(mustValue(t, `"anything"`)) {
		t.Error("a string should fail not{type: string}")
	}
	if !h.Valid(mustValue(t, `5`)) {
		t.Error("a non-string should pass not{type: string}")
	}
}

func TestIfThenElse(t *testing.T) {
	h := mustHandle(t, `{
		"if": {"properties": {"kind": {"const": "circle"}}},
		"then": {"required": ["radius"]},
		"else": {"required": ["width", "height"]}
	}`)
	if !h.Valid(mustValue(t, `{"kind": "circle", "radius": 2}`)) {
		t.Error("a circle with a radius should be valid")
	}
	if h.Valid(mustValue(t, `{"kind": "circle"}`)) {
		t.Error("a circle without a radius should be invalid")
	}
	if !h.Valid(mustValue(t, `{"kind": "square", "width": 1, "height": 1}`)) {
		t.Error("a non-circle with width/height should be valid")
	}
	if h.Valid(mustValue(t, `{"kind": "square"}`)) {
		t.Error("a non-circle missing width/height should be invalid")
	}
}

func TestEnumAndConst(t *testing.T) {
	h := mustHandle(t, `{"properties": {"status": {"enum": ["a", "b", "c"]}, "version": {"const": 1}}}`)
	if !h.Valid(mustValue(t, `{"status": "b", "version": 1}`)) {
		t.Error("expected valid enum/const values to pass")
	}
	errs, err := h.Validate(mustValue(t, `{"status": "z", "version": 2}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %+v", errs)
	}
}

func TestSchemaFalseRejectsEverything(t *testing.T) {
	h, err := jsonschema.NewDraft7FromJSON([]byte(`{"properties": {"x": false}}`))
	if err != nil {
		t.Fatalf("building handle: %v", err)
	}
	if h.Valid(mustValue(t, `{"x": 1}`)) {
		t.Error("a `false` subschema should reject any value")
	}
	if !h.Valid(mustValue(t, `{}`)) {
		t.Error("omitting the property entirely should still be valid")
	}
}
