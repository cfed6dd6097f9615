package jsonschema

import (
	"github.com/oarkflow/expr"
)

// ExprKeyword compiles source once and returns a KeywordFunc suitable for
// WithKeyword: at validation time the expression is evaluated with "data"
// bound to the instance value and "keyword" bound to the keyword's schema
// value, and must produce a boolean. This lets a caller add assertion
// keywords the core engine has no built-in notion of, without recompiling
// the expression on every call.
func ExprKeyword(source string) (KeywordFunc, error) {
	vm, err := expr.Parse(source)
	if err != nil {
		return nil, &SchemaError{Msg: "compiling expression keyword", Err: err}
	}
	return func(data any, keywordValue any, pointer string) any {
		env := map[string]any{
			"data":    data,
			"keyword": keywordValue,
			"pointer": pointer,
		}
		result, err := vm.Eval(env)
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		return ok && b
	}, nil
}
