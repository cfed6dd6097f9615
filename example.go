package jsonschema

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// GenerateExample synthesizes a value that satisfies s's declared shape,
// preferring the schema's own "examples"/"default" when present and
// falling back to type-appropriate fake data otherwise. It walks
// "properties" and "items" recursively; it does not attempt to satisfy
// every assertion keyword (pattern, format, bounds) exactly, so a
// generated example is a starting point for tooling, not a compliance
// guarantee.
func GenerateExample(schemaNode any) (any, error) {
	obj, ok := asObject(schemaNode)
	if !ok {
		return nil, fmt.Errorf("jsonschema: cannot generate an example for a boolean schema")
	}

	if examplesVal, ok := objectGet(obj, "examples"); ok {
		if examples, ok := asArray(examplesVal); ok && len(examples) > 0 {
			return examples[0], nil
		}
	}
	if defaultVal, ok := objectGet(obj, "default"); ok {
		return defaultVal, nil
	}

	typeName := ""
	if typeVal, ok := objectGet(obj, "type"); ok {
		switch t := typeVal.(type) {
		case string:
			typeName = t
		case []any:
			if len(t) > 0 {
				typeName, _ = t[0].(string)
			}
		}
	}

	switch typeName {
	case "object":
		result := newObject()
		if propsVal, ok := objectGet(obj, "properties"); ok {
			if props, ok := asObject(propsVal); ok {
				for pair := props.Oldest(); pair != nil; pair = pair.Next() {
					sample, err := GenerateExample(pair.Value)
					if err != nil {
						continue
					}
					result.Set(pair.Key, sample)
				}
			}
		}
		return result, nil
	case "array":
		if itemsVal, ok := objectGet(obj, "items"); ok {
			sample, err := GenerateExample(itemsVal)
			if err != nil {
				return nil, err
			}
			return []any{sample}, nil
		}
		return []any{}, nil
	case "string":
		if formatVal, ok := objectGet(obj, "format"); ok {
			if formatVal == "email" {
				return gofakeit.Email(), nil
			}
			if formatVal == "date-time" {
				return gofakeit.Date().Format("2006-01-02T15:04:05Z07:00"), nil
			}
		}
		return gofakeit.Word(), nil
	case "integer":
		return int64(gofakeit.Number(1, 100)), nil
	case "number":
		return gofakeit.Float64Range(1, 100), nil
	case "boolean":
		return gofakeit.Bool(), nil
	case "null":
		return nil, nil
	default:
		return nil, fmt.Errorf("jsonschema: cannot generate an example for unknown type %q", typeName)
	}
}
