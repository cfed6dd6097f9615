package jsonschema

import "strconv"

// validateArray implements the array assertions and
// applicators: maxItems, minItems, uniqueItems, items (positional-tuple or
// single-schema form), additionalItems, contains.
func validateArray(data []any, s Object, pointer, baseURI string, ctx *validateCtx) ([]Error, error) {
	var errs []Error

	if maxVal, ok := objectGet(s, "maxItems"); ok {
		max, ok := asFloat64(maxVal)
		if !ok {
			return nil, &SchemaError{Msg: "maxItems value must be numeric"}
		}
		if float64(len(data)) > max {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "maxItems", Info: "array has more items than maxItems"})
		}
	}

	if minVal, ok := objectGet(s, "minItems"); ok {
		min, ok := asFloat64(minVal)
		if !ok {
			return nil, &SchemaError{Msg: "minItems value must be numeric"}
		}
		if float64(len(data)) < min {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "minItems", Info: "array has fewer items than minItems"})
		}
	}

	if uniqVal, ok := objectGet(s, "uniqueItems"); ok {
		unique, _ := uniqVal.(bool)
		if unique && !itemsAreUnique(data) {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "uniqueItems", Info: "array items are not unique"})
		}
	}

	itemsVal, hasItems := objectGet(s, "items")
	if hasItems {
		if tuple, ok := asArray(itemsVal); ok {
			for i, item := range data {
				if i >= len(tuple) {
					break
				}
				itemErrs, err := validate(item, tuple[i], appendPointer(pointer, strconv.Itoa(i)), baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, itemErrs...)
			}
			if len(data) > len(tuple) {
				if addlVal, ok := objectGet(s, "additionalItems"); ok {
					for i := len(tuple); i < len(data); i++ {
						addlErrs, err := validate(data[i], addlVal, appendPointer(pointer, strconv.Itoa(i)), baseURI, ctx)
						if err != nil {
							return nil, err
						}
						errs = append(errs, addlErrs...)
					}
				}
			}
		} else {
			for i, item := range data {
				itemErrs, err := validate(item, itemsVal, appendPointer(pointer, strconv.Itoa(i)), baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, itemErrs...)
			}
		}
	}

	if containsVal, ok := objectGet(s, "contains"); ok {
		results := make([]SubschemaResult, len(data))
		matched := false
		for i, item := range data {
			itemErrs, err := validate(item, containsVal, appendPointer(pointer, strconv.Itoa(i)), baseURI, ctx)
			if err != nil {
				return nil, err
			}
			results[i] = SubschemaResult{Index: i, cached: itemErrs, done: true}
			if len(itemErrs) == 0 {
				matched = true
			}
		}
		if !matched {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "contains", Info: "no array item matched the contains subschema", Subschemas: results})
		}
	}

	return errs, nil
}

func itemsAreUnique(data []any) bool {
	for i := 0; i < len(data); i++ {
		for j := i + 1; j < len(data); j++ {
			if valuesEqual(data[i], data[j]) {
				return false
			}
		}
	}
	return true
}

