package jsonschema

import "math"

// multipleOfEpsilon bounds the floating-point tolerance used when deciding
// whether data / divisor is an integer. Chosen deliberately: float64
// division with an epsilon, rather than exact rational arithmetic.
const multipleOfEpsilon = 1e-9

// validateNumeric implements the numeric assertions:
// maximum, minimum, exclusiveMaximum, exclusiveMinimum, multipleOf. The
// draft-04 dialect pairs exclusiveMinimum/exclusiveMaximum as booleans
// modifying minimum/maximum; draft-06 and draft-07 use them as standalone
// numeric bounds.
func validateNumeric(data any, s Object, pointer string, ctx *validateCtx) ([]Error, error) {
	v, _ := asFloat64(data)
	var errs []Error

	if ctx.handle.draft.boolExclusiveMin {
		if maxVal, ok := objectGet(s, "maximum"); ok {
			max, ok := asFloat64(maxVal)
			if !ok {
				return nil, &SchemaError{Msg: "maximum value must be numeric"}
			}
			exclusive, _ := objectGet(s, "exclusiveMaximum")
			excl, _ := exclusive.(bool)
			if (excl && v >= max) || (!excl && v > max) {
				errs = append(errs, numericError(data, s, pointer, "maximum", "value exceeds maximum"))
			}
		}
		if minVal, ok := objectGet(s, "minimum"); ok {
			min, ok := asFloat64(minVal)
			if !ok {
				return nil, &SchemaError{Msg: "minimum value must be numeric"}
			}
			exclusive, _ := objectGet(s, "exclusiveMinimum")
			excl, _ := exclusive.(bool)
			if (excl && v <= min) || (!excl && v < min) {
				errs = append(errs, numericError(data, s, pointer, "minimum", "value is below minimum"))
			}
		}
	} else {
		if maxVal, ok := objectGet(s, "maximum"); ok {
			max, ok := asFloat64(maxVal)
			if !ok {
				return nil, &SchemaError{Msg: "maximum value must be numeric"}
			}
			if v > max {
				errs = append(errs, numericError(data, s, pointer, "maximum", "value exceeds maximum"))
			}
		}
		if minVal, ok := objectGet(s, "minimum"); ok {
			min, ok := asFloat64(minVal)
			if !ok {
				return nil, &SchemaError{Msg: "minimum value must be numeric"}
			}
			if v < min {
				errs = append(errs, numericError(data, s, pointer, "minimum", "value is below minimum"))
			}
		}
		if exMaxVal, ok := objectGet(s, "exclusiveMaximum"); ok {
			exMax, ok := asFloat64(exMaxVal)
			if !ok {
				return nil, &SchemaError{Msg: "exclusiveMaximum value must be numeric"}
			}
			if v >= exMax {
				errs = append(errs, numericError(data, s, pointer, "exclusiveMaximum", "value does not fall strictly below exclusiveMaximum"))
			}
		}
		if exMinVal, ok := objectGet(s, "exclusiveMinimum"); ok {
			exMin, ok := asFloat64(exMinVal)
			if !ok {
				return nil, &SchemaError{Msg: "exclusiveMinimum value must be numeric"}
			}
			if v <= exMin {
				errs = append(errs, numericError(data, s, pointer, "exclusiveMinimum", "value does not fall strictly above exclusiveMinimum"))
			}
		}
	}

	if multVal, ok := objectGet(s, "multipleOf"); ok {
		mult, ok := asFloat64(multVal)
		if !ok || mult <= 0 {
			return nil, &SchemaError{Msg: "multipleOf value must be a positive number"}
		}
		quotient := v / mult
		tolerance := multipleOfEpsilon * math.Max(1, math.Abs(quotient))
		if math.Abs(quotient-math.Round(quotient)) > tolerance {
			errs = append(errs, numericError(data, s, pointer, "multipleOf", "value is not a multiple of multipleOf"))
		}
	}

	return errs, nil
}

func numericError(data any, s Object, pointer, keyword, info string) Error {
	return Error{Data: data, Schema: s, Pointer: pointer, Type: keyword, Info: info}
}
