package jsonschema

// validateType implements the "type" assertion followed
// by the type-specific keyword families: numeric, string, array, object.
// Each family only runs when data is of the matching JSON type, per JSON
// Schema's "keywords that don't apply to the instance's type are ignored"
// rule.
func validateType(data any, s Object, pointer, baseURI string, ctx *validateCtx) ([]Error, error) {
	var errs []Error

	if typeVal, ok := objectGet(s, "type"); ok {
		if ok, names := checkType(data, typeVal); !ok {
			if name, isSingle := typeVal.(string); isSingle {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: name, Info: "value is not of type " + name})
			} else {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "type", Info: "value does not match any of types " + names})
			}
		}
	}

	switch {
	case isNumeric(data):
		numErrs, err := validateNumeric(data, s, pointer, ctx)
		if err != nil {
			return nil, err
		}
		errs = append(errs, numErrs...)
	case jsonTypeName(data) == "string":
		strErrs, err := validateString(data.(string), s, pointer, ctx)
		if err != nil {
			return nil, err
		}
		errs = append(errs, strErrs...)
	case jsonTypeName(data) == "array":
		arrErrs, err := validateArray(data.([]any), s, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		errs = append(errs, arrErrs...)
	case jsonTypeName(data) == "object":
		objErrs, err := validateObject(data.(Object), s, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		errs = append(errs, objErrs...)
	}

	return errs, nil
}
