package jsonschema_test

import "testing"

func TestPropertiesAndRequired(t *testing.T) {
	h := mustHandle(t, `{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}, "age": {"type": "integer"}}
	}`)
	if !h.Valid(mustValue(t, `{"name": "Ada", "age": 30}`)) {
		t.Error("expected a complete object to be valid")
	}
	if h.Valid(mustValue(t, `{"age": 30}`)) {
		t.Error("expected a missing required property to be invalid")
	}
	if h.Valid(mustValue(t, `{"name": 5}`)) {
		t.Error("expected a wrong-typed property to be invalid")
	}
}

func TestPatternPropertiesAndAdditionalProperties(t *testing.T) {
	h := mustHandle(t, `{
		"type": "object",
		"properties": {"id": {"type": "integer"}},
		"patternProperties": {"^x-": {"type": "string"}},
		"additionalProperties": false
	}`)
	if !h.Valid(mustValue(t, `{"id": 1, "x-custom": "hi"}`)) {
		t.Error("expected a matching pattern property to be valid")
	}
	if h.Valid(mustValue(t, `{"id": 1, "x-custom": 5}`)) {
		t.Error("expected a wrong-typed pattern property to be invalid")
	}
	if h.Valid(mustValue(t, `{"id": 1, "other": "nope"}`)) {
		t.Error("expected an unlisted property to fail additionalProperties: false")
	}
}

func TestAdditionalPropertiesSchema(t *testing.T) {
	h := mustHandle(t, `{
		"properties": {"id": {"type": "integer"}},
		"additionalProperties": {"type": "string"}
	}`)
	if !h.Valid(mustValue(t, `{"id": 1, "note": "ok"}`)) {
		t.Error("expected a string-valued additional property to be valid")
	}
	if h.Valid(mustValue(t, `{"id": 1, "note": 5}`)) {
		t.Error("expected a non-string additional property to be invalid")
	}
}

func TestPropertyNames(t *testing.T) {
	h := mustHandle(t, `{"propertyNames": {"pattern": "^[a-z]+$"}}`)
	if !h.Valid(mustValue(t, `{"abc": 1, "def": 2}`)) {
		t.Error("expected lowercase-only keys to be valid")
	}
	if h.Valid(mustValue(t, `{"ABC": 1}`)) {
		t.Error("expected an uppercase key to fail propertyNames")
	}
}

func TestDependencies(t *testing.T) {
	h := mustHandle(t, `{
		"dependencies": {
			"creditCard": ["billingAddress"],
			"newsletter": {"required": ["email"]}
		}
	}`)
	if !h.Valid(mustValue(t, `{}`)) {
		t.Error("expected an object with no dependent keys to be valid")
	}
	if h.Valid(mustValue(t, `{"creditCard": "1234"}`)) {
		t.Error("expected a missing property dependency to be invalid")
	}
	if !h.Valid(mustValue(t, `{"creditCard": "1234", "billingAddress": "x"}`)) {
		t.Error("expected a satisfied property dependency to be valid")
	}
	if h.Valid(mustValue(t, `{"newsletter": true}`)) {
		t.Error("expected a missing schema dependency to be invalid")
	}
}

func TestItemsTupleAndAdditionalItems(t *testing.T) {
	h := mustHandle(t, `{
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": {"type": "boolean"}
	}`)
	if !h.Valid(mustValue(t, `["a", 1, true, false]`)) {
		t.Error("expected a matching tuple plus valid extras to pass")
	}
	if h.Valid(mustValue(t, `["a", 1, "not-a-bool"]`)) {
		t.Error("expected a non-boolean extra item to fail additionalItems")
	}
	if h.Valid(mustValue(t, `[1, "a"]`)) {
		t.Error("expected a mismatched tuple to fail")
	}
}

func TestItemsSingleSchema(t *testing.T) {
	h := mustHandle(t, `{"items": {"type": "integer"}}`)
	if !h.Valid(mustValue(t, `[1, 2, 3]`)) {
		t.Error("expected an all-integer array to pass")
	}
	if h.Valid(mustValue(t, `[1, "two"]`)) {
		t.Error("expected a mixed array to fail")
	}
}

func TestUniqueItems(t *testing.T) {
	h := mustHandle(t, `{"uniqueItems": true}`)
	if !h.Valid(mustValue(t, `[1, 2, 3]`)) {
		t.Error("expected distinct items to pass")
	}
	if h.Valid(mustValue(t, `[1, 2, 1]`)) {
		t.Error("expected duplicate items to fail")
	}
	if h.Valid(mustValue(t, `[1, 1.0]`)) {
		t.Error("expected int/float duplicates (1 and 1.0) to fail uniqueItems")
	}
}

func TestContains(t *testing.T) {
	h := mustHandle(t, `{"contains": {"type": "integer", "minimum": 10}}`)
	if !h.Valid(mustValue(t, `["a", 5, 20]`)) {
		t.Error("expected an array containing a matching item to pass")
	}
	errs, err := h.Validate(mustValue(t, `["a", 5, 9]`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) != 1 || errs[0].Type != "contains" {
		t.Fatalf("expected a single contains error, got %+v", errs)
	}
	if len(errs[0].Subschemas) != 3 {
		t.Errorf("expected one subschema result per array item, got %d", len(errs[0].Subschemas))
	}
}

func TestMaxMinItemsAndProperties(t *testing.T) {
	h := mustHandle(t, `{"maxItems": 2, "minItems": 1}`)
	if !h.Valid(mustValue(t, `[1]`)) {
		t.Error("expected a single item to satisfy [1,2]")
	}
	if h.Valid(mustValue(t, `[]`)) {
		t.Error("expected an empty array to fail minItems")
	}
	if h.Valid(mustValue(t, `[1, 2, 3]`)) {
		t.Error("expected a 3-item array to fail maxItems")
	}

	hp := mustHandle(t, `{"maxProperties": 1}`)
	if !hp.Valid(mustValue(t, `{"a": 1}`)) {
		t.Error("expected a single property to satisfy maxProperties: 1")
	}
	if hp.Valid(mustValue(t, `{"a": 1, "b": 2}`)) {
		t.Error("expected two properties to fail maxProperties: 1")
	}
}
