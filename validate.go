package jsonschema

// validateCtx threads the state that must survive across an entire
// Validate call: the owning Handle, the depth counter used for RefCycle
// protection, and the per-call cache of resolved remote documents.
type validateCtx struct {
	handle        *Handle
	depth         int
	remoteHandles map[string]*Handle
}

// validate checks data against schemaNode (a Value, either a boolean schema
// or a schema object) and returns every violation found, non-short-
// circuiting, or a single exceptional error that terminates the walk early.
func validate(data any, schemaNode any, pointer string, baseURI string, ctx *validateCtx) ([]Error, error) {
	switch s := schemaNode.(type) {
	case bool:
		if s {
			return nil, nil
		}
		return []Error{{Data: data, Schema: schemaNode, Pointer: pointer, Type: "schema", Info: "schema is `false`: no value is valid"}}, nil
	case Object:
		return validateObjectSchema(data, s, pointer, baseURI, ctx)
	default:
		return nil, &SchemaError{Msg: "schema node must be an object or a boolean"}
	}
}

func validateObjectSchema(data any, s Object, pointer, baseURI string, ctx *validateCtx) ([]Error, error) {
	if id, ok := schemaID(s, ctx.handle.draft.idKeyword); ok {
		if joined, err := joinURI(baseURI, id); err == nil {
			baseURI = joined
		}
	}

	// $ref suppresses every sibling keyword in draft-04/06/07.
	if refVal, ok := objectGet(s, "$ref"); ok {
		refStr, ok := refVal.(string)
		if !ok {
			return nil, &SchemaError{Msg: "$ref value must be a string"}
		}
		return resolveRef(data, refStr, baseURI, pointer, ctx)
	}

	var errs []Error

	if fv, ok := objectGet(s, "format"); ok {
		if ferrs, err := checkFormat(data, fv, s, pointer, ctx); err != nil {
			return nil, err
		} else {
			errs = append(errs, ferrs...)
		}
	}

	for name, fn := range ctx.handle.opts.keywords {
		kv, ok := objectGet(s, name)
		if !ok {
			continue
		}
		result := fn(data, kv, pointer)
		switch r := result.(type) {
		case bool:
			if !r {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: name, Info: "failed user-defined keyword " + name})
			}
		case []Error:
			errs = append(errs, r...)
		case nil:
		default:
			return nil, &SchemaError{Msg: "user-defined keyword " + name + " returned an unsupported value"}
		}
	}

	if enumVal, ok := objectGet(s, "enum"); ok {
		options, ok := asArray(enumVal)
		if !ok {
			return nil, &SchemaError{Msg: "enum value must be an array"}
		}
		matched := false
		for _, opt := range options {
			if valuesEqual(data, opt) {
				matched = true
				break
			}
		}
		if !matched {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "enum", Info: "value is not one of the enumerated values"})
		}
	}

	if constVal, ok := objectGet(s, "const"); ok {
		if !valuesEqual(data, constVal) {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "const", Info: "value does not equal the const value"})
		}
	}

	logicErrs, err := validateLogic(data, s, pointer, baseURI, ctx)
	if err != nil {
		return nil, err
	}
	errs = append(errs, logicErrs...)

	typeErrs, err := validateType(data, s, pointer, baseURI, ctx)
	if err != nil {
		return nil, err
	}
	errs = append(errs, typeErrs...)

	return errs, nil
}

// jsonTypeName returns data's primitive JSON type name, one of "null",
// "boolean", "object", "array", "string", "number", or "unknown" for a Go
// value outside the engine's Value representation.
func jsonTypeName(data any) string {
	switch data.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case Object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case int64, float64:
		return "number"
	default:
		return "unknown"
	}
}

// matchesType reports whether data satisfies the named "type" value,
// special-casing "integer" as a number with zero fractional part (so 2.0
// satisfies "integer").
func matchesType(data any, want string) bool {
	if want == "integer" {
		return isNumeric(data) && isIntegerValue(data)
	}
	return jsonTypeName(data) == want
}

// checkType validates the "type" keyword, which accepts either a single
// type name or an array of names.
func checkType(data any, typeVal any) (bool, string) {
	switch t := typeVal.(type) {
	case string:
		return matchesType(data, t), ""
	case []any:
		names := make([]string, 0, len(t))
		for _, v := range t {
			if name, ok := v.(string); ok {
				names = append(names, name)
				if matchesType(data, name) {
					return true, ""
				}
			}
		}
		return false, joinNames(names)
	default:
		return true, ""
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
