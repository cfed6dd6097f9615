package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/oarkflow/date"
)

// checkFormat implements the "format" assertion. Format only constrains
// string instances; per the JSON Schema core specification, other types
// vacuously satisfy any format. An unrecognized format name is ignored
// rather than rejected.
func checkFormat(data any, formatVal any, s Object, pointer string, ctx *validateCtx) ([]Error, error) {
	str, ok := data.(string)
	if !ok || !ctx.handle.opts.formatPolicy {
		return nil, nil
	}
	name, ok := formatVal.(string)
	if !ok {
		return nil, &SchemaError{Msg: "format value must be a string"}
	}

	var fn FormatFunc
	if override, ok := ctx.handle.opts.formats[name]; ok {
		switch v := override.(type) {
		case bool:
			if !v {
				return nil, nil
			}
		case FormatFunc:
			fn = v
		default:
			return nil, &SchemaError{Msg: "format override for " + name + " must be false or a FormatFunc"}
		}
	}
	if fn == nil {
		fn, ok = defaultFormats[name]
		if !ok {
			return nil, nil
		}
	}
	if !fn(str, formatVal) {
		return []Error{{Data: data, Schema: s, Pointer: pointer, Type: "format", Info: "string does not satisfy format " + name}}, nil
	}
	return nil, nil
}

var defaultFormats = map[string]FormatFunc{
	"date-time":             formatDateTime,
	"date":                  formatDateTime,
	"time":                  func(s string, _ any) bool { _, err := date.Parse("1963-06-19T" + s); return err == nil },
	"email":                 formatEmail,
	"idn-email":             formatEmail,
	"hostname":              formatHostname,
	"idn-hostname":          formatIDNHostname,
	"ipv4":                  formatIPv4,
	"ipv6":                  formatIPv6,
	"uri":                   formatURI,
	"uri-reference":         formatURIRef,
	"iri":                   formatURI,
	"iri-reference":         formatURIRef,
	"uri-template":          formatURITemplate,
	"json-pointer":          formatJSONPointer,
	"relative-json-pointer": formatRelativeJSONPointer,
	"regex":                 formatRegex,
}

var (
	hostnamePattern     = regexp.MustCompile(`^([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])(\.([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]{0,61}[a-zA-Z0-9]))*$`)
	unescapedTilda      = regexp.MustCompile(`\~[^01]`)
	endingTilda         = regexp.MustCompile(`\~$`)
	schemePrefixPattern = regexp.MustCompile(`^[^\:]+\:`)
	uriTemplatePattern  = regexp.MustCompile(`\{[^\{\}\\]*\}`)
)

func formatDateTime(s string, _ any) bool {
	_, err := date.Parse(s)
	return err == nil
}

func formatEmail(s string, _ any) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func formatHostname(s string, _ any) bool {
	return hostnamePattern.MatchString(s) && len(s) <= 255
}

func formatIDNHostname(s string, _ any) bool {
	return len(s) <= 255
}

func formatIPv4(s string, _ any) bool {
	return strings.Contains(s, ".") && net.ParseIP(s) != nil
}

func formatIPv6(s string, _ any) bool {
	return strings.Contains(s, ":") && net.ParseIP(s) != nil
}

func formatURIRef(s string, _ any) bool {
	if _, err := url.Parse(s); err != nil {
		return false
	}
	return !strings.Contains(s, "\\")
}

func formatURI(s string, _ any) bool {
	if !formatURIRef(s, nil) {
		return false
	}
	return schemePrefixPattern.MatchString(s)
}

func formatURITemplate(s string, _ any) bool {
	expanded := uriTemplatePattern.ReplaceAllString(s, "aaa")
	if strings.ContainsAny(expanded, "{}") {
		return false
	}
	return formatURIRef(expanded, nil)
}

func formatJSONPointer(s string, _ any) bool {
	if s == "" {
		return true
	}
	if s[0] != '/' {
		return false
	}
	rest := s[1:]
	return !unescapedTilda.MatchString(rest) && !endingTilda.MatchString(rest)
}

func formatRelativeJSONPointer(s string, _ any) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return false
	}
	if _, err := strconv.Atoi(s[:i]); err != nil {
		return false
	}
	rest := s[i:]
	if strings.HasPrefix(rest, "#") {
		return true
	}
	return formatJSONPointer(rest, nil)
}

func formatRegex(s string, _ any) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
