package qs

import (
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Pair is one decoded key/value pair in source order.
type Pair struct {
	Key   string
	Value string
}

// Decode parses a raw query string (with or without a leading "?") into a
// Map value. Decoding is lenient: malformed escapes are kept as typed and
// pairs without "=" get an empty value.
func Decode(raw string, opts ...Option) value.Value {
	o := newOptions(opts)
	return build(SplitPairs(raw, o.ParameterLimit), o)
}

// DecodePairs builds a Map value from already split pairs, such as the fields
// of a multipart form. Keys keep their bracket semantics.
func DecodePairs(pairs []Pair, opts ...Option) value.Value {
	o := newOptions(opts)
	if o.ParameterLimit > 0 && len(pairs) > o.ParameterLimit {
		pairs = pairs[:o.ParameterLimit]
	}
	return build(pairs, o)
}

// SplitPairs splits raw on "&" and unescapes keys and values.
// At most limit pairs are returned when limit is positive.
func SplitPairs(raw string, limit int) []Pair {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "&")
	pairs := make([]Pair, 0, len(parts))
	for _, part := range parts {
		if limit > 0 && len(pairs) >= limit {
			break
		}
		if part == "" {
			continue
		}

		// "a[b]=c=d" splits after "]=" so "=" inside brackets stays in the key.
		pos := strings.Index(part, "]=")
		if pos >= 0 {
			pos++
		} else {
			pos = strings.IndexByte(part, '=')
		}

		var k, v string
		if pos < 0 {
			k = part
		} else {
			k, v = part[:pos], part[pos+1:]
		}

		k = Unescape(k)
		if k == "" {
			continue
		}
		pairs = append(pairs, Pair{Key: k, Value: Unescape(v)})
	}
	return pairs
}

// Unescape decodes "+" as a space and valid %XX escapes as bytes. Invalid
// escapes are kept verbatim.
func Unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
