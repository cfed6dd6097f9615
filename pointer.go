package jsonschema

import (
	"net/url"
	"strconv"
	"strings"
)

// joinURI performs standard RFC-3986 base URI resolution, used to compute
// the effective base URI as the validator descends through $id-bearing
// subschemas and resolves $ref values against it.
func joinURI(base, relative string) (string, error) {
	switch {
	case relative != "" && base != "":
		b, err := url.Parse(base)
		if err != nil {
			return "", &SchemaError{Msg: "invalid base URI " + strconv.Quote(base), Err: err}
		}
		r, err := url.Parse(relative)
		if err != nil {
			return "", &SchemaError{Msg: "invalid URI " + strconv.Quote(relative), Err: err}
		}
		return b.ResolveReference(r).String(), nil
	case relative != "":
		if _, err := url.Parse(relative); err != nil {
			return "", &SchemaError{Msg: "invalid URI " + strconv.Quote(relative), Err: err}
		}
		return relative, nil
	case base != "":
		return base, nil
	default:
		return "", nil
	}
}

// splitFragment splits a URI into its non-fragment part and fragment (the
// text after '#', not including the '#'), plus whether a '#' was present at
// all. A URI with no '#' (e.g. "http://a/y") is not the same thing as one
// with an explicit empty fragment (e.g. "http://a/y#") — callers that only
// branch on the fragment being pointer-shaped need to tell those apart.
func splitFragment(uri string) (base string, frag string, hasFragment bool) {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i], uri[i+1:], true
	}
	return uri, "", false
}

// isJSONPointerFragment reports whether frag looks like an RFC-6901 JSON
// pointer fragment: empty, or starting with '/'.
func isJSONPointerFragment(frag string) bool {
	return frag == "" || strings.HasPrefix(frag, "/")
}

// splitPointer splits an RFC-6901 pointer into its unescaped reference
// tokens. "" denotes the document root (empty token list); "/" yields a
// single empty-string token, as RFC 6901 specifies.
func splitPointer(pointer string) []string {
	if pointer == "" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = unescapeToken(p)
	}
	return tokens
}

func unescapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// escapeToken RFC-6901-escapes a single reference token for inclusion in an
// instance pointer. Escaping always runs, even for tokens that happen not
// to need it.
func escapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// appendPointer appends an already-unescaped token to a JSON pointer,
// escaping it in the process.
func appendPointer(pointer, token string) string {
	return pointer + "/" + escapeToken(token)
}

// evaluatePointer performs RFC-6901 JSON pointer evaluation against the
// internal Value tree.
func evaluatePointer(pointer string, root any) (any, error) {
	cur := root
	for _, tok := range splitPointer(pointer) {
		switch node := cur.(type) {
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, &RefError{Pointer: pointer, Msg: "token " + strconv.Quote(tok) + " does not resolve in array"}
			}
			cur = node[idx]
		case Object:
			v, ok := objectGet(node, tok)
			if !ok {
				return nil, &RefError{Pointer: pointer, Msg: "token " + strconv.Quote(tok) + " does not resolve in object"}
			}
			cur = v
		default:
			return nil, &RefError{Pointer: pointer, Msg: "token " + strconv.Quote(tok) + " does not resolve: not a container"}
		}
	}
	return cur, nil
}

// idKeyword names, by dialect, the property that identifies a schema
// resource: "id" for draft-04, "$id" from draft-06 onward.
type idKeyword string

const (
	idKeywordLegacy idKeyword = "id"
	idKeywordModern idKeyword = "$id"
)

// pointerURI walks the pointer token-by-token from root, collecting every
// $id encountered along the path and joining them in order, so that a ref
// whose pointer crosses through $id-scoped subschemas re-bases correctly.
func pointerURI(root any, pointer string, idKey idKeyword) (string, bool) {
	base := ""
	found := false
	cur := root
	if obj, ok := asObject(cur); ok {
		if id, ok := schemaID(obj, idKey); ok {
			if joined, err := joinURI(base, id); err == nil {
				base = joined
				found = true
			}
		}
	}
	for _, tok := range splitPointer(pointer) {
		switch node := cur.(type) {
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return base, found
			}
			cur = node[idx]
		case Object:
			v, ok := objectGet(node, tok)
			if !ok {
				return base, found
			}
			cur = v
		default:
			return base, found
		}
		if obj, ok := asObject(cur); ok {
			if id, ok := schemaID(obj, idKey); ok {
				if joined, err := joinURI(base, id); err == nil {
					base = joined
					found = true
				}
			}
		}
	}
	return base, found
}

// schemaID returns the raw string value of the dialect's id keyword on
// obj, if present. The base-URI update this drives is step 1 of schema
// processing, applied before $ref is even inspected — $ref suppresses
// sibling assertion and applicator keywords, not the id-driven base-URI
// update that already happened one step earlier, so this reads id
// regardless of whether obj also carries $ref. The value is returned
// unmodified — it may carry only a fragment (draft-04's bare-name
// identifier refs, e.g. "id": "#foo") or only a path (the common
// new-base-URI case, e.g. "$id": "sub.json") — callers join it against
// the enclosing base URI themselves.
func schemaID(obj Object, idKey idKeyword) (string, bool) {
	v, ok := objectGet(obj, string(idKey))
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
