package jsonschema

import "regexp"

// validateObject implements the object assertions and
// applicators: maxProperties, minProperties, required, dependencies,
// properties, patternProperties, additionalProperties, propertyNames.
func validateObject(data Object, s Object, pointer, baseURI string, ctx *validateCtx) ([]Error, error) {
	var errs []Error

	if maxVal, ok := objectGet(s, "maxProperties"); ok {
		max, ok := asFloat64(maxVal)
		if !ok {
			return nil, &SchemaError{Msg: "maxProperties value must be numeric"}
		}
		if float64(objectLen(data)) > max {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "maxProperties", Info: "object has more properties than maxProperties"})
		}
	}

	if minVal, ok := objectGet(s, "minProperties"); ok {
		min, ok := asFloat64(minVal)
		if !ok {
			return nil, &SchemaError{Msg: "minProperties value must be numeric"}
		}
		if float64(objectLen(data)) < min {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "minProperties", Info: "object has fewer properties than minProperties"})
		}
	}

	if reqVal, ok := objectGet(s, "required"); ok {
		names, ok := asArray(reqVal)
		if !ok {
			return nil, &SchemaError{Msg: "required value must be an array"}
		}
		for _, n := range names {
			name, ok := n.(string)
			if !ok {
				return nil, &SchemaError{Msg: "required entries must be strings"}
			}
			if _, ok := objectGet(data, name); !ok {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "required", Info: "missing required property " + name})
			}
		}
	}

	if depsVal, ok := objectGet(s, "dependencies"); ok {
		deps, ok := asObject(depsVal)
		if !ok {
			return nil, &SchemaError{Msg: "dependencies value must be an object"}
		}
		for pair := deps.Oldest(); pair != nil; pair = pair.Next() {
			if _, present := objectGet(data, pair.Key); !present {
				continue
			}
			switch dep := pair.Value.(type) {
			case []any:
				for _, n := range dep {
					name, ok := n.(string)
					if !ok {
						return nil, &SchemaError{Msg: "property dependency entries must be strings"}
					}
					if _, ok := objectGet(data, name); !ok {
						errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "dependencies", Info: "property " + pair.Key + " requires property " + name})
					}
				}
			default:
				depErrs, err := validate(data, dep, pointer, baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, depErrs...)
			}
		}
	}

	propsVal, hasProps := objectGet(s, "properties")
	var propsObj Object
	if hasProps {
		var ok bool
		propsObj, ok = asObject(propsVal)
		if !ok {
			return nil, &SchemaError{Msg: "properties value must be an object"}
		}
	}

	patVal, hasPat := objectGet(s, "patternProperties")
	var patObj Object
	var patRes []*regexp.Regexp
	var patKeys []string
	if hasPat {
		var ok bool
		patObj, ok = asObject(patVal)
		if !ok {
			return nil, &SchemaError{Msg: "patternProperties value must be an object"}
		}
		for pair := patObj.Oldest(); pair != nil; pair = pair.Next() {
			re, err := compiledPattern(pair.Key, ctx.handle)
			if err != nil {
				return nil, err
			}
			patKeys = append(patKeys, pair.Key)
			patRes = append(patRes, re)
		}
	}

	addlVal, hasAddl := objectGet(s, "additionalProperties")

	for pair := data.Oldest(); pair != nil; pair = pair.Next() {
		key, val := pair.Key, pair.Value
		matchedByName := false
		matchedByPattern := false
		childPointer := appendPointer(pointer, key)

		if hasProps {
			if propSchema, ok := objectGet(propsObj, key); ok {
				matchedByName = true
				propErrs, err := validate(val, propSchema, childPointer, baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, propErrs...)
			}
		}

		for i, re := range patRes {
			if re.MatchString(key) {
				matchedByPattern = true
				patSchema, _ := objectGet(patObj, patKeys[i])
				patErrs, err := validate(val, patSchema, childPointer, baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, patErrs...)
			}
		}

		if hasAddl && !matchedByName && !matchedByPattern {
			addlErrs, err := validate(val, addlVal, childPointer, baseURI, ctx)
			if err != nil {
				return nil, err
			}
			errs = append(errs, addlErrs...)
		}
	}

	if pnVal, ok := objectGet(s, "propertyNames"); ok {
		for pair := data.Oldest(); pair != nil; pair = pair.Next() {
			nameErrs, err := validate(pair.Key, pnVal, pointer, baseURI, ctx)
			if err != nil {
				return nil, err
			}
			errs = append(errs, nameErrs...)
		}
	}

	return errs, nil
}
