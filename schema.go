package jsonschema

import (
	"sync"
)

// KeywordFunc is a user-defined keyword callable:
// (data, schema value, pointer) -> bool | []Error. Returning a bool is
// pass/fail with a synthesized Error on failure; returning a non-nil slice
// appends those Error records verbatim.
type KeywordFunc func(data any, keywordValue any, pointer string) any

// FormatFunc validates data (already known to be a string) against a named
// format. Returning false fails the "format" keyword.
type FormatFunc func(data string, keywordValue any) bool

// RefResolverFunc fetches the JSON document identified by uri, for $refs
// that point outside the schema currently being validated.
type RefResolverFunc func(uri string) (any, error)

// Draft names one of the three dialects this engine supports and the
// handful of ways they differ: the property name used
// for schema identifiers, and how exclusiveMinimum/exclusiveMaximum are
// interpreted.
type Draft struct {
	name             string
	idKeyword        idKeyword
	boolExclusiveMin bool // draft-04: exclusiveMinimum is a bool paired with minimum
}

var (
	// Draft4 is the draft-04 dialect: "id" for identifiers, boolean
	// exclusiveMinimum/exclusiveMaximum paired with minimum/maximum.
	Draft4 = &Draft{name: "draft-04", idKeyword: idKeywordLegacy, boolExclusiveMin: true}
	// Draft6 is the draft-06 dialect: "$id" for identifiers, standalone
	// numeric exclusiveMinimum/exclusiveMaximum.
	Draft6 = &Draft{name: "draft-06", idKeyword: idKeywordModern, boolExclusiveMin: false}
	// Draft7 is the draft-07 dialect: same as draft-06 for the keywords
	// this engine implements. if/then/else is not gated by dialect; it is
	// evaluated under all three drafts.
	Draft7 = &Draft{name: "draft-07", idKeyword: idKeywordModern, boolExclusiveMin: false}
)

// Option configures a Handle at construction time via the functional-option
// pattern: each Option mutates the in-progress options struct.
type Option func(*options)

type options struct {
	draft        *Draft
	formatPolicy bool
	formats      map[string]any // string -> false | FormatFunc
	keywords     map[string]KeywordFunc
	resolver     RefResolverFunc
}

// WithFormat turns format-keyword assertion on or off. Defaults to on.
func WithFormat(enabled bool) Option {
	return func(o *options) { o.formatPolicy = enabled }
}

// WithFormatOverride registers a format name to a callable, or to false to
// disable assertion for that name specifically while leaving the format
// policy itself on.
func WithFormatOverride(name string, validator any) Option {
	return func(o *options) {
		if o.formats == nil {
			o.formats = map[string]any{}
		}
		o.formats[name] = validator
	}
}

// WithKeyword registers a user-defined keyword callable.
func WithKeyword(name string, fn KeywordFunc) Option {
	return func(o *options) {
		if o.keywords == nil {
			o.keywords = map[string]KeywordFunc{}
		}
		o.keywords[name] = fn
	}
}

// WithRefResolver sets the callback used to fetch schemas $ref points to
// outside the document being validated. Pass NetHTTPRefResolver to fetch
// external refs over HTTP(S).
func WithRefResolver(resolver RefResolverFunc) Option {
	return func(o *options) { o.resolver = resolver }
}

// Handle is the externally exposed object bound to a root schema document,
// a format policy, format and keyword overrides, and a ref resolver. It is
// immutable after construction except for its lazily-built ID index.
type Handle struct {
	root     any
	draft    *Draft
	opts     options
	baseURI  string
	idxOnce  sync.Once
	idx      map[string]any
	regexes  sync.Map // pattern string -> *regexp.Regexp
}

// DefaultRefResolver is the resolver used when none is configured: it
// always fails with UnknownRef. Named, not anonymous, so it is a
// nameable value rather than implicit process-wide state.
var DefaultRefResolver RefResolverFunc = func(uri string) (any, error) {
	return nil, &UnknownRef{URI: uri}
}

func newHandle(draft *Draft, root any, opts ...Option) (*Handle, error) {
	o := options{
		draft:        draft,
		formatPolicy: true,
		resolver:     DefaultRefResolver,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolver == nil {
		o.resolver = DefaultRefResolver
	}
	h := &Handle{root: root, draft: draft, opts: o}
	if obj, ok := asObject(root); ok {
		if id, ok := schemaID(obj, draft.idKeyword); ok {
			if joined, err := joinURI("", id); err == nil {
				h.baseURI = joined
			}
		}
	}
	return h, nil
}

// NewDraft4 constructs a Handle for the draft-04 dialect from an already
// decoded schema document (see DecodeValue).
func NewDraft4(root any, opts ...Option) (*Handle, error) { return newHandle(Draft4, root, opts...) }

// NewDraft6 constructs a Handle for the draft-06 dialect.
func NewDraft6(root any, opts ...Option) (*Handle, error) { return newHandle(Draft6, root, opts...) }

// NewDraft7 constructs a Handle for the draft-07 dialect.
func NewDraft7(root any, opts ...Option) (*Handle, error) { return newHandle(Draft7, root, opts...) }

// NewDraft4FromJSON decodes data and constructs a draft-04 Handle from it.
func NewDraft4FromJSON(data []byte, opts ...Option) (*Handle, error) {
	root, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return NewDraft4(root, opts...)
}

// NewDraft6FromJSON decodes data and constructs a draft-06 Handle from it.
func NewDraft6FromJSON(data []byte, opts ...Option) (*Handle, error) {
	root, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return NewDraft6(root, opts...)
}

// NewDraft7FromJSON decodes data and constructs a draft-07 Handle from it.
func NewDraft7FromJSON(data []byte, opts ...Option) (*Handle, error) {
	root, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return NewDraft7(root, opts...)
}

// idIndex returns the Handle's ID index, building it at most once.
// sync.Once guarantees concurrent readers observe the fully populated map.
func (h *Handle) idIndex() map[string]any {
	h.idxOnce.Do(func() {
		h.idx = buildIDIndex(h.root, h.draft.idKeyword, h.baseURI)
	})
	return h.idx
}

// Valid reports whether data validates against h with no errors and no
// exceptional failure occurred while checking it.
func (h *Handle) Valid(data any) bool {
	errs, err := h.Validate(data)
	return err == nil && len(errs) == 0
}

// Validate returns the complete set of validation errors data violates
// against h. An empty slice (it may be nil) means data is
// valid. A non-nil error is an exceptional failure that
// terminated validation before it could finish enumerating Error records.
func (h *Handle) Validate(data any) ([]Error, error) {
	ctx := &validateCtx{handle: h, remoteHandles: map[string]*Handle{}}
	return validate(data, h.root, "", h.baseURI, ctx)
}

// ValidateJSON decodes data and validates the result against h.
func (h *Handle) ValidateJSON(data []byte) ([]Error, error) {
	v, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return h.Validate(v)
}

const defaultMaxRefDepth = 32
