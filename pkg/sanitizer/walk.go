package sanitizer

import "github.com/dmitrymomot/paramkit/pkg/value"

// Walk returns a copy of v with escape applied to every string leaf.
// Sequences and mappings are walked recursively; numbers, booleans, files and
// Missing are returned unchanged. A nil escape defaults to EscapeHTML.
//
// Escaping is not idempotent: walking an already escaped value escapes the
// entities a second time.
func Walk(v value.Value, escape func(string) string) value.Value {
	if escape == nil {
		escape = EscapeHTML
	}
	return walk(v, escape)
}

func walk(v value.Value, escape func(string) string) value.Value {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return value.String(escape(s))
	case value.KindSeq:
		items := v.Items()
		for i, item := range items {
			items[i] = walk(item, escape)
		}
		return value.Seq(items...)
	case value.KindMap:
		m := make(map[string]value.Value, v.Len())
		for _, k := range v.Keys() {
			e, _ := v.Get(k)
			m[k] = walk(e, escape)
		}
		return value.Map(m)
	default:
		return v
	}
}
