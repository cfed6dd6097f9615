package jsonschema_test

import (
	"errors"
	"testing"

	"github.com/oarkflow/jsonschema"
)

func mustHandle(t *testing.T, schemaJSON string, opts ...jsonschema.Option) *jsonschema.Handle {
	t.Helper()
	h, err := jsonschema.NewDraft7FromJSON([]byte(schemaJSON), opts...)
	if err != nil {
		t.Fatalf("building handle: %v", err)
	}
	return h
}

func mustValue(t *testing.T, instanceJSON string) any {
	t.Helper()
	v, err := jsonschema.DecodeValue([]byte(instanceJSON))
	if err != nil {
		t.Fatalf("decoding instance: %v", err)
	}
	return v
}

func TestRefSameDocumentPointer(t *testing.T) {
	h := mustHandle(t, `{
		"type": "object",
		"properties": {"a": {"$ref": "#/definitions/positiveInt"}},
		"definitions": {"positiveInt": {"type": "integer", "minimum": 1}}
	}`)
	if !h.Valid(mustValue(t, `{"a": 5}`)) {
		t.Error("expected {\"a\": 5} to be valid")
	}
	if h.Valid(mustValue(t, `{"a": -1}`)) {
		t.Error("expected {\"a\": -1} to be invalid")
	}
}

func TestRefIdentifierByFragment(t *testing.T) {
	h := mustHandle(t, `{
		"$id": "https://example.com/root.json",
		"type": "object",
		"properties": {"addr": {"$ref": "#address"}},
		"definitions": {
			"address": {"$id": "#address", "type": "string", "minLength": 3}
		}
	}`)
	if !h.Valid(mustValue(t, `{"addr": "123 Main St"}`)) {
		t.Error("expected a long enough address to be valid")
	}
	if h.Valid(mustValue(t, `{"addr": "x"}`)) {
		t.Error("expected a too-short address to be invalid")
	}
}

func TestRefFragmentLessURIByIDIndex(t *testing.T) {
	h := mustHandle(t, `{
		"$id": "http://a/",
		"definitions": {"x": {"$id": "y", "type": "integer"}},
		"$ref": "http://a/y"
	}`)
	errs, err := h.Validate(mustValue(t, `1.5`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 1 || errs[0].Type != "integer" {
		t.Fatalf("expected a single \"integer\" error, got %+v", errs)
	}
	if !h.Valid(mustValue(t, `5`)) {
		t.Error("expected an integer instance to satisfy the $ref'd subschema")
	}
}

func TestRefExternalDocumentViaResolver(t *testing.T) {
	external, err := jsonschema.DecodeValue([]byte(`{"type": "string", "format": "email"}`))
	if err != nil {
		t.Fatalf("decoding external schema: %v", err)
	}
	resolver := func(uri string) (any, error) {
		if uri == "https://example.com/email.json" {
			return external, nil
		}
		return nil, &jsonschema.UnknownRef{URI: uri}
	}
	h := mustHandle(t, `{
		"type": "object",
		"properties": {"contact": {"$ref": "https://example.com/email.json"}}
	}`, jsonschema.WithRefResolver(resolver))

	if !h.Valid(mustValue(t, `{"contact": "a@b.com"}`)) {
		t.Error("expected a valid email to pass")
	}
	if h.Valid(mustValue(t, `{"contact": "not-an-email"}`)) {
		t.Error("expected an invalid email to fail")
	}
}

func TestRefUnknownRaisesUnknownRef(t *testing.T) {
	h := mustHandle(t, `{"$ref": "https://nowhere.example/missing.json"}`)
	_, err := h.Validate(mustValue(t, `{}`))
	if err == nil {
		t.Fatal("expected an exceptional error")
	}
	var unknown *jsonschema.UnknownRef
	if !errors.As(err, &unknown) {
		t.Errorf("expected *UnknownRef, got %T: %v", err, err)
	}
}

func TestRefCycleDetected(t *testing.T) {
	h := mustHandle(t, `{
		"$ref": "#/definitions/loop",
		"definitions": {"loop": {"$ref": "#/definitions/loop"}}
	}`)
	_, err := h.Validate(mustValue(t, `1`))
	if err == nil {
		t.Fatal("expected a RefCycle error")
	}
	var cycle *jsonschema.RefCycle
	if !errors.As(err, &cycle) {
		t.Errorf("expected *RefCycle, got %T: %v", err, err)
	}
}
