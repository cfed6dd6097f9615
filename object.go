package jsonschema

import (
	reflect "github.com/goccy/go-reflect"
)

// objectGet returns the value stored under key and whether it was present.
func objectGet(o Object, key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.Get(key)
}

// objectLen returns the number of keys in o, or 0 for a nil Object.
func objectLen(o Object) int {
	if o == nil {
		return 0
	}
	return o.Len()
}

// objectKeys returns the keys of o in insertion order.
func objectKeys(o Object) []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// asObject type-asserts v as an Object.
func asObject(v any) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}

// asArray type-asserts v as a sequence.
func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// canonicalizeForEqual rewrites the engine's Value representation into a
// plain map[string]any/[]any/float64 tree so that goccy/go-reflect's
// DeepEqual can decide structural equality for enum, const and uniqueItems:
// key order must not matter, and an int64 must compare equal to a float64
// of the same magnitude (1 == 1.0).
func canonicalizeForEqual(v any) any {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case Object:
		m := make(map[string]any, objectLen(val))
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			m[pair.Key] = canonicalizeForEqual(pair.Value)
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = canonicalizeForEqual(e)
		}
		return out
	default:
		return val
	}
}

// valuesEqual reports whether a and b are structurally equal JSON values,
// used for enum, const and uniqueItems comparisons.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(canonicalizeForEqual(a), canonicalizeForEqual(b))
}
