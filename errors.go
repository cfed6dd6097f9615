package jsonschema

import "fmt"

// Error is a validation error record. It carries
// enough structural context — the offending instance value, the schema node
// that produced it, the instance pointer, the failing keyword, and, for
// composite keywords, the lazily-evaluable per-branch results — that a
// downstream tool can present a full failure report or just a count.
type Error struct {
	// Data is the offending instance value.
	Data any
	// Schema is the schema node that produced the error.
	Schema any
	// Pointer is an RFC-6901 pointer into the original instance.
	Pointer string
	// Type is the keyword name that failed, or "schema" for a `false`
	// boolean schema.
	Type string
	// Info is a short human-readable description of the failure.
	Info string
	// Subschemas is populated only for allOf/anyOf/oneOf/contains: a
	// sequence of per-branch error sequences. Every branch is validated
	// before the composite error is produced, and its errors are stored.
	Subschemas []SubschemaResult
}

// SubschemaResult is one branch's outcome inside a composite keyword's
// Subschemas field. It holds the errors collected when that branch was
// validated, so enumerating it reproduces the exact errors that made the
// branch fail. Errs, when set, is called by Errors only if no stored
// result is present; the built-in composites always store one.
type SubschemaResult struct {
	Index  int
	Errs   func() []Error
	cached []Error
	done   bool
}

// Errors evaluates (and memoizes) this branch's error sequence.
func (s *SubschemaResult) Errors() []Error {
	if !s.done {
		s.cached = s.Errs()
		s.done = true
	}
	return s.cached
}

func (e Error) Error() string {
	if e.Info != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Pointer, e.Info, e.Type)
	}
	return fmt.Sprintf("%s: failed keyword %q", e.Pointer, e.Type)
}

// Exceptional failures: thrown as ordinary Go errors
// and terminate the current validation, as opposed to Error records, which
// are streamed as data.

// UnknownRef is raised when the default ref resolver is invoked (no
// resolver was configured, and a $ref pointed outside the schema being
// validated), and by NetHTTPRefResolver when the server answers with an
// HTTP error status.
type UnknownRef struct {
	URI string
}

func (e *UnknownRef) Error() string {
	return fmt.Sprintf("jsonschema: unknown reference %q: no ref resolver configured", e.URI)
}

// RefError is raised when JSON pointer evaluation fails to resolve a token.
type RefError struct {
	Pointer string
	Msg     string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("jsonschema: cannot resolve pointer %q: %s", e.Pointer, e.Msg)
}

// NotImplemented is raised for an unsupported contentEncoding or
// contentMediaType value.
type NotImplemented struct {
	Keyword string
	Value   string
}

func (e *NotImplemented) Error() string {
	return fmt.Sprintf("jsonschema: %s %q is not implemented", e.Keyword, e.Value)
}

// SchemaError is raised for a malformed schema construct discovered lazily
// at the moment the relevant keyword is evaluated — e.g. an uncompilable
// regex in "pattern".
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jsonschema: schema error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("jsonschema: schema error: %s", e.Msg)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// RefCycle is raised when $ref resolution exceeds the configured recursion
// depth cap.
type RefCycle struct {
	URI   string
	Depth int
}

func (e *RefCycle) Error() string {
	return fmt.Sprintf("jsonschema: $ref cycle detected resolving %q past depth %d", e.URI, e.Depth)
}
