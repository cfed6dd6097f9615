package jsonschema

// validateLogic implements the logical keywords: allOf,
// anyOf, oneOf, not, and if/then/else. Each branch is validated by
// recursing into validate with the same data and base URI; each branch is
// validated once, and its errors are kept in a SubschemaResult so reading a
// composite failure's Subschemas field never re-walks a branch.
func validateLogic(data any, s Object, pointer, baseURI string, ctx *validateCtx) ([]Error, error) {
	var errs []Error

	if allOfVal, ok := objectGet(s, "allOf"); ok {
		branches, ok := asArray(allOfVal)
		if !ok {
			return nil, &SchemaError{Msg: "allOf value must be an array"}
		}
		results, anyFailed, err := runBranches(data, branches, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		if anyFailed {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "allOf", Info: "not all subschemas matched", Subschemas: results})
		}
	}

	if anyOfVal, ok := objectGet(s, "anyOf"); ok {
		branches, ok := asArray(anyOfVal)
		if !ok {
			return nil, &SchemaError{Msg: "anyOf value must be an array"}
		}
		results, anyFailed, err := runBranches(data, branches, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		if anyFailed && allBranchesFailed(results) {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "anyOf", Info: "no subschema matched", Subschemas: results})
		}
	}

	if oneOfVal, ok := objectGet(s, "oneOf"); ok {
		branches, ok := asArray(oneOfVal)
		if !ok {
			return nil, &SchemaError{Msg: "oneOf value must be an array"}
		}
		results, _, err := runBranches(data, branches, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		if countPassing(results) != 1 {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "oneOf", Info: "exactly one subschema must match", Subschemas: results})
		}
	}

	if notVal, ok := objectGet(s, "not"); ok {
		notErrs, err := validate(data, notVal, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		if len(notErrs) == 0 {
			errs = append(errs, Error{Data: data, Schema: s, Pointer: pointer, Type: "not", Info: "value matched the negated subschema"})
		}
	}

	if ifVal, ok := objectGet(s, "if"); ok {
		ifErrs, err := validate(data, ifVal, pointer, baseURI, ctx)
		if err != nil {
			return nil, err
		}
		if len(ifErrs) == 0 {
			if thenVal, ok := objectGet(s, "then"); ok {
				thenErrs, err := validate(data, thenVal, pointer, baseURI, ctx)
				if err != nil {
					return nil, err
				}
				errs = append(errs, thenErrs...)
			}
		} else if elseVal, ok := objectGet(s, "else"); ok {
			elseErrs, err := validate(data, elseVal, pointer, baseURI, ctx)
			if err != nil {
				return nil, err
			}
			errs = append(errs, elseErrs...)
		}
	}

	return errs, nil
}

// runBranches evaluates every branch schema against data eagerly (its
// pass/fail outcome is needed immediately to decide the composite
// keyword's own result) but stores each branch's errors behind a
// SubschemaResult so a second read of Error.Subschemas is free.
func runBranches(data any, branches []any, pointer, baseURI string, ctx *validateCtx) ([]SubschemaResult, bool, error) {
	results := make([]SubschemaResult, len(branches))
	anyFailed := false
	for i, branch := range branches {
		branchErrs, err := validate(data, branch, pointer, baseURI, ctx)
		if err != nil {
			return nil, false, err
		}
		if len(branchErrs) > 0 {
			anyFailed = true
		}
		results[i] = SubschemaResult{Index: i, Errs: func(e []Error) func() []Error { return func() []Error { return e } }(branchErrs), cached: branchErrs, done: true}
	}
	return results, anyFailed, nil
}

func allBranchesFailed(results []SubschemaResult) bool {
	for _, r := range results {
		if len(r.Errors()) == 0 {
			return false
		}
	}
	return true
}

func countPassing(results []SubschemaResult) int {
	n := 0
	for _, r := range results {
		if len(r.Errors()) == 0 {
			n++
		}
	}
	return n
}
