package jsonschema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/oarkflow/jsonschema/internal/codec"
)

// Object is the engine's keyed-mapping representation: a JSON object that
// preserves the source's key insertion order. Ordering is required for
// stable error ordering and reproducible test output; a plain Go map cannot
// provide it.
type Object = *orderedmap.OrderedMap[string, any]

func newObject() Object {
	return orderedmap.New[string, any]()
}

// DecodeValue parses data into the engine's internal Value representation:
// nil, bool, int64, float64, string, []any, or Object. Integers (JSON
// number literals without a fractional part or exponent) decode to int64,
// except those outside int64's range, which decode to float64; everything
// else numeric decodes to float64, so that a schema author's
// "type": "integer" check and a "2.0" instance can both be answered
// correctly.
func DecodeValue(data []byte) (any, error) {
	p := &valueParser{data: data}
	p.skipWS()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.pos != len(p.data) {
		return nil, fmt.Errorf("jsonschema: unexpected trailing data at offset %d", p.pos)
	}
	return v, nil
}

// EncodeValue serializes v (an internal Value, or any value MarshalJSON
// otherwise understands) back to JSON bytes, through the swappable codec.
func EncodeValue(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// SetMarshaler replaces the JSON encoder EncodeValue uses, letting an
// embedder swap the codec (away from the default goccy/go-json) without
// touching engine code.
func SetMarshaler(m codec.Marshaler) { codec.SetMarshaler(m) }

// SetUnmarshaler replaces the codec's Unmarshal function. DecodeValue does
// not use it: instance and schema decoding always goes through this
// package's own parser.
func SetUnmarshaler(u codec.Unmarshaler) { codec.SetUnmarshaler(u) }

// valueParser is a small hand-rolled recursive-descent JSON reader, used
// instead of driving encoding/json or goccy/go-json's decode-into-any path
// directly, because neither preserves both the integer/float distinction
// and key order this package's Value representation requires.
type valueParser struct {
	data []byte
	pos  int
}

func (p *valueParser) skipWS() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *valueParser) errf(format string, args ...any) error {
	return fmt.Errorf("jsonschema: at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *valueParser) parseValue() (any, error) {
	if p.pos >= len(p.data) {
		return nil, p.errf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == 't':
		return p.parseLiteral("true", true)
	case c == 'f':
		return p.parseLiteral("false", false)
	case c == 'n':
		return p.parseLiteral("null", nil)
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errf("unexpected character %q", c)
	}
}

func (p *valueParser) parseLiteral(lit string, value any) (any, error) {
	if p.pos+len(lit) > len(p.data) || string(p.data[p.pos:p.pos+len(lit)]) != lit {
		return nil, p.errf("invalid literal, expected %q", lit)
	}
	p.pos += len(lit)
	return value, nil
}

func (p *valueParser) parseObject() (any, error) {
	obj := newObject()
	p.pos++ // '{'
	p.skipWS()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWS()
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			return nil, p.errf("expected string key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.errf("expected ':' after object key")
		}
		p.pos++
		p.skipWS()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key.(string), val)
		p.skipWS()
		if p.pos >= len(p.data) {
			return nil, p.errf("unterminated object")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errf("expected ',' or '}' in object")
		}
	}
}

func (p *valueParser) parseArray() (any, error) {
	arr := make([]any, 0, 4)
	p.pos++ // '['
	p.skipWS()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipWS()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
		p.skipWS()
		if p.pos >= len(p.data) {
			return nil, p.errf("unterminated array")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			continue
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errf("expected ',' or ']' in array")
		}
	}
}

func (p *valueParser) parseString() (any, error) {
	p.pos++ // opening quote
	start := p.pos
	var b strings.Builder
	plain := true
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '"' {
			s := ""
			if plain {
				s = string(p.data[start:p.pos])
			} else {
				s = b.String()
			}
			p.pos++
			return s, nil
		}
		if c == '\\' {
			if plain {
				b.WriteString(string(p.data[start:p.pos]))
				plain = false
			}
			p.pos++
			if p.pos >= len(p.data) {
				return nil, p.errf("unterminated escape")
			}
			switch e := p.data[p.pos]; e {
			case '"', '\\', '/':
				b.WriteByte(e)
				p.pos++
			case 'b':
				b.WriteByte('\b')
				p.pos++
			case 'f':
				b.WriteByte('\f')
				p.pos++
			case 'n':
				b.WriteByte('\n')
				p.pos++
			case 'r':
				b.WriteByte('\r')
				p.pos++
			case 't':
				b.WriteByte('\t')
				p.pos++
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return nil, err
				}
				b.WriteRune(r)
			default:
				return nil, p.errf("invalid escape character %q", e)
			}
			continue
		}
		if c < 0x20 {
			return nil, p.errf("invalid control character in string")
		}
		if !plain {
			b.WriteByte(c)
		}
		p.pos++
	}
	return nil, p.errf("unterminated string")
}

func (p *valueParser) parseUnicodeEscape() (rune, error) {
	p.pos++ // 'u'
	r1, err := p.hex4()
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(rune(r1)) {
		if p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
			save := p.pos
			p.pos += 2
			r2, err := p.hex4()
			if err == nil {
				if dec := utf16.DecodeRune(rune(r1), rune(r2)); dec != utf8.RuneError {
					return dec, nil
				}
			}
			p.pos = save
		}
		return utf8.RuneError, nil
	}
	return rune(r1), nil
}

func (p *valueParser) hex4() (uint32, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errf("invalid unicode escape")
	}
	v, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		return 0, p.errf("invalid unicode escape: %v", err)
	}
	p.pos += 4
	return uint32(v), nil
}

func (p *valueParser) parseNumber() (any, error) {
	start := p.pos
	isFloat := false
	if p.pos < len(p.data) && p.data[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		isFloat = true
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}
	lit := string(p.data[start:p.pos])
	if lit == "" || lit == "-" {
		return nil, p.errf("invalid number literal")
	}
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, p.errf("invalid number literal %q: %v", lit, err)
		}
		return f, nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		// integer literal too large for int64: fall back to float64, since
		// numeric keywords here don't need exactness beyond float64.
		f, ferr := strconv.ParseFloat(lit, 64)
		if ferr != nil {
			return nil, p.errf("invalid number literal %q: %v", lit, err)
		}
		return f, nil
	}
	return n, nil
}

// isIntegerValue reports whether v is a numeric Value that satisfies
// JSON Schema's "integer" type: an int64, or a float64 with zero
// fractional part.
func isIntegerValue(v any) bool {
	switch n := v.(type) {
	case int64:
		return true
	case float64:
		return n == math.Trunc(n) && !isSpecialFloat(n)
	default:
		return false
	}
}

func isSpecialFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// asFloat64 converts a numeric Value to float64 for comparisons.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}
