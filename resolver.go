package jsonschema

import (
	"io"
	"net/http"
)

// NetHTTPRefResolver fetches uri over HTTP(S) and decodes the response
// body as a schema document. Callers opt into it explicitly with
// WithRefResolver(jsonschema.NetHTTPRefResolver) — it is never wired in by
// default, since reaching the network during validation is a policy
// decision, not a default.
var NetHTTPRefResolver RefResolverFunc = func(uri string) (any, error) {
	resp, err := http.Get(uri)
	if err != nil {
		return nil, &SchemaError{Msg: "fetching " + uri, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &UnknownRef{URI: uri}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SchemaError{Msg: "reading " + uri, Err: err}
	}
	return DecodeValue(body)
}

// remoteHandle fetches and wraps uri's document as a Handle of the same
// dialect and options as ctx's current handle, memoizing the result for
// the lifetime of a single top-level Validate call.
func remoteHandle(uri string, ctx *validateCtx) (*Handle, error) {
	if h, ok := ctx.remoteHandles[uri]; ok {
		return h, nil
	}
	root, err := ctx.handle.opts.resolver(uri)
	if err != nil {
		return nil, err
	}
	h, err := newHandle(ctx.handle.draft, root, inheritOptions(ctx.handle.opts))
	if err != nil {
		return nil, err
	}
	ctx.remoteHandles[uri] = h
	return h, nil
}

// inheritOptions replays an already-resolved options value as a single
// Option, so a remote Handle inherits the same format policy, format
// overrides, user keywords and resolver as the Handle that fetched it.
func inheritOptions(o options) Option {
	return func(dst *options) { *dst = o }
}

// resolveRef implements a four-step $ref resolution algorithm:
// data is the instance being checked against the schema that
// $ref points to; parentURI is the base URI in effect at the schema node
// carrying $ref; pointer is the instance pointer accumulated so far.
func resolveRef(data any, refString string, parentURI string, pointer string, ctx *validateCtx) ([]Error, error) {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > defaultMaxRefDepth {
		return nil, &RefCycle{URI: refString, Depth: ctx.depth}
	}

	refURI, err := joinURI(parentURI, refString)
	if err != nil {
		return nil, err
	}

	refBase, refFrag, hasFragment := splitFragment(refURI)

	// Step 2: an explicit '#' is present and its fragment is a JSON pointer
	// (possibly empty). A ref with no '#' at all (e.g. "http://a/y") does
	// not qualify here even though its fragment also comes back empty —
	// it falls through to steps 3 and 4 instead.
	if hasFragment && isJSONPointerFragment(refFrag) {
		if len(refString) > 0 && refString[0] == '#' {
			// Same-document pointer ref: evaluate against the handle's own
			// root, re-based through any $id crossed along the pointer
			// path.
			root := ctx.handle.root
			newBase, ok := pointerURI(root, refFrag, ctx.handle.draft.idKeyword)
			if !ok {
				newBase = ctx.handle.baseURI
			}
			sub, perr := evaluatePointer(refFrag, root)
			if perr != nil {
				return nil, perr
			}
			return validate(data, sub, pointer, newBase, ctx)
		}
		h, ferr := remoteHandle(refBase, ctx)
		if ferr != nil {
			return nil, ferr
		}
		newBase, ok := pointerURI(h.root, refFrag, h.draft.idKeyword)
		if !ok {
			newBase = h.baseURI
		}
		sub, perr := evaluatePointer(refFrag, h.root)
		if perr != nil {
			return nil, perr
		}
		return validate(data, sub, pointer, newBase, ctx)
	}

	// Step 3: ref_uri names an $id-bearing subschema already indexed in
	// this handle's own document.
	if sub, ok := ctx.handle.idIndex()[refURI]; ok {
		return validate(data, sub, pointer, refURI, ctx)
	}

	// Step 4: fall back to the resolver for the whole ref_uri (base plus
	// fragment folded together as an opaque external identifier), then
	// look the same URI up in the fetched document's own ID index.
	h, ferr := remoteHandle(refURI, ctx)
	if ferr != nil {
		return nil, ferr
	}
	sub, ok := h.idIndex()[refURI]
	if !ok {
		sub = h.root
	}
	return validate(data, sub, pointer, h.baseURI, ctx)
}
