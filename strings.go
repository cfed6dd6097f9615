package jsonschema

import (
	"encoding/base64"
	"regexp"
	"unicode/utf8"
)

// validateString implements the string assertions:
// maxLength, minLength, pattern, contentEncoding, contentMediaType.
// Lengths count Unicode code points, not bytes, matching the JSON Schema
// core specification's "string" length definition.
func validateString(data string, s Object, pointer string, ctx *validateCtx) ([]Error, error) {
	var errs []Error
	length := utf8.RuneCountInString(data)

	if maxVal, ok := objectGet(s, "maxLength"); ok {
		max, ok := asFloat64(maxVal)
		if !ok {
			return nil, &SchemaError{Msg: "maxLength value must be numeric"}
		}
		if float64(length) > max {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "maxLength", Info: "string is longer than maxLength"})
		}
	}

	if minVal, ok := objectGet(s, "minLength"); ok {
		min, ok := asFloat64(minVal)
		if !ok {
			return nil, &SchemaError{Msg: "minLength value must be numeric"}
		}
		if float64(length) < min {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "minLength", Info: "string is shorter than minLength"})
		}
	}

	if patVal, ok := objectGet(s, "pattern"); ok {
		pat, ok := patVal.(string)
		if !ok {
			return nil, &SchemaError{Msg: "pattern value must be a string"}
		}
		re, err := compiledPattern(pat, ctx.handle)
		if err != nil {
			return nil, err
		}
		if !re.MatchString(data) {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "pattern", Info: "string does not match pattern"})
		}
	}

	if encVal, ok := objectGet(s, "contentEncoding"); ok {
		enc, ok := encVal.(string)
		if !ok {
			return nil, &SchemaError{Msg: "contentEncoding value must be a string"}
		}
		switch enc {
		case "base64":
			if _, err := base64.StdEncoding.Strict().DecodeString(data); err != nil {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "contentEncoding", Info: "string is not valid base64"})
			}
		default:
			return nil, &NotImplemented{Keyword: "contentEncoding", Value: enc}
		}
	}

	if mediaVal, ok := objectGet(s, "contentMediaType"); ok {
		media, ok := mediaVal.(string)
		if !ok {
			return nil, &SchemaError{Msg: "contentMediaType value must be a string"}
		}
		switch media {
		case "application/json":
			if _, err := DecodeValue([]byte(data)); err != nil {
				errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "contentMediaType", Info: "string is not valid application/json"})
			}
		default:
			return nil, &NotImplemented{Keyword: "contentMediaType", Value: media}
		}
	}

	return errs, nil
}

// compiledPattern compiles pat with Go's RE2 engine, memoized per Handle
// since schema-side regexes are recompiled once, not on every instance.
func compiledPattern(pat string, h *Handle) (*regexp.Regexp, error) {
	if cached, ok := h.regexes.Load(pat); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, &SchemaError{Msg: "invalid pattern " + pat, Err: err}
	}
	h.regexes.Store(pat, re)
	return re, nil
}
