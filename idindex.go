package jsonschema

// buildIDIndex performs a single pre-order traversal of the root schema
// that joins each $id against its enclosing base URI and registers every
// subschema reachable that way. The walk descends only into "definitions"
// children; applicator subschemas (properties, items, allOf, ...) are
// resolved on demand through live pointer evaluation instead.
func buildIDIndex(root any, idKey idKeyword, baseURI string) map[string]any {
	index := make(map[string]any)
	walkIDIndex(root, baseURI, idKey, index)
	return index
}

func walkIDIndex(node any, base string, idKey idKeyword, index map[string]any) {
	obj, ok := asObject(node)
	if !ok {
		if arr, ok := asArray(node); ok {
			for _, item := range arr {
				walkIDIndex(item, base, idKey, index)
			}
		}
		return
	}

	newBase := base
	if id, ok := schemaID(obj, idKey); ok {
		if joined, err := joinURI(base, id); err == nil {
			if joined != base {
				index[joined] = obj
			}
			newBase = joined
		}
	}

	defsVal, ok := objectGet(obj, "definitions")
	if !ok {
		return
	}
	if defs, ok := asObject(defsVal); ok {
		for pair := defs.Oldest(); pair != nil; pair = pair.Next() {
			walkIDIndex(pair.Value, newBase, idKey, index)
		}
		return
	}
	if arr, ok := asArray(defsVal); ok {
		for _, item := range arr {
			walkIDIndex(item, newBase, idKey, index)
		}
	}
}
