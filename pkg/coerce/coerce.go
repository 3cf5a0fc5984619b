package coerce

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/value"
)

// decimalPattern matches the decimal literals accepted as numbers:
// optional sign, digits with optional fraction (or a bare fraction) and an
// optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Option configures coercion.
type Option func(*options)

type options struct {
	jsonLiterals bool
	onError      func(literal string, err error)
}

// WithJSONLiterals enables decoding of string values that look like JSON
// arrays ("[...]") or objects ("{...}").
func WithJSONLiterals() Option {
	return func(o *options) { o.jsonLiterals = true }
}

// WithErrorHook registers a callback for literals that look like JSON but fail
// to decode. The literal is kept as a plain string either way.
func WithErrorHook(fn func(literal string, err error)) Option {
	return func(o *options) {
		if fn != nil {
			o.onError = fn
		}
	}
}

// Coerce converts string leaves of v into the type they spell: "true" and
// "false" become booleans, numeric strings become numbers, and sequences and
// mappings are coerced element by element. Files and Missing pass through.
//
// Coerce never mutates v and is idempotent.
func Coerce(v value.Value, opts ...Option) value.Value {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return coerce(v, o)
}

// Raw converts plain Go data with value.FromAny and coerces the result.
func Raw(x any, opts ...Option) value.Value {
	return Coerce(value.FromAny(x), opts...)
}

func coerce(v value.Value, o *options) value.Value {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return coerceString(s, o)
	case value.KindSeq:
		items := v.Items()
		for i, item := range items {
			items[i] = coerce(item, o)
		}
		return value.Seq(items...)
	case value.KindMap:
		m := make(map[string]value.Value, v.Len())
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			m[k] = coerce(e, o)
		}
		return value.Map(m)
	default:
		return v
	}
}

func coerceString(s string, o *options) value.Value {
	if b, ok := ParseBool(s); ok {
		return value.Bool(b)
	}
	if f, ok := ParseNumber(s); ok {
		return value.Number(f)
	}
	if o.jsonLiterals && IsJSONLiteral(s) {
		parsed, err := ParseLiteral(s)
		if err != nil {
			if o.onError != nil {
				o.onError(s, err)
			}
			return value.String(s)
		}
		return coerce(parsed, o)
	}
	return value.String(s)
}

// ParseBool recognizes exactly "true" and "false".
func ParseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// IsNumeric reports whether s spells a number.
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// ParseNumber parses s as a number. Surrounding whitespace is ignored.
// Decimal literals ("12", "-1.5", ".5", "1e3", "007") and 0x, 0o, 0b integer
// literals are accepted. Empty strings, NaN, infinities and values outside
// the float64 range are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil || strings.Contains(s, "_") {
				return 0, false
			}
			return float64(n), true
		}
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// IsJSONLiteral reports whether s is bracketed like a JSON array or object.
func IsJSONLiteral(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '[' && last == ']') || (first == '{' && last == '}')
}

// ParseLiteral decodes a JSON array or object literal into a Value.
// It returns ErrMalformedLiteral when s is not bracketed or not valid JSON.
func ParseLiteral(s string) (value.Value, error) {
	if !IsJSONLiteral(s) {
		return value.Missing(), fmt.Errorf("%w: not a JSON array or object", ErrMalformedLiteral)
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Missing(), fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return value.Missing(), fmt.Errorf("%w: unexpected data after literal", ErrMalformedLiteral)
	}

	return value.FromAny(raw), nil
}
