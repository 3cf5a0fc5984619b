package value

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// FromAny converts plain Go data into a Value.
//
// Supported inputs: nil, Value, FileRef, *FileRef, string, bool, all integer
// and float types, json.Number, []any, []string, []Value, map[string]any,
// map[string]string, map[string][]string, url.Values and map[string]Value.
// Any other type becomes Missing.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case *Value:
		if t == nil {
			return Missing()
		}
		return *t
	case FileRef:
		return File(t)
	case *FileRef:
		if t == nil {
			return Missing()
		}
		return File(*t)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case []Value:
		return Seq(t...)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromAny(e)
		}
		return Value{kind: KindSeq, seq: items}
	case []string:
		return stringSeq(t)
	case map[string]Value:
		return Map(t)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Value{kind: KindMap, m: m}
	case map[string]string:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = String(e)
		}
		return Value{kind: KindMap, m: m}
	case url.Values:
		return fromMultiMap(t)
	case map[string][]string:
		return fromMultiMap(t)
	default:
		return Missing()
	}
}

func stringSeq(ss []string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindSeq, seq: items}
}

// fromMultiMap keeps single values scalar and repeated values as sequences,
// the same shape a query string decoder produces for repeated keys.
func fromMultiMap(mm map[string][]string) Value {
	m := make(map[string]Value, len(mm))
	for k, vs := range mm {
		switch len(vs) {
		case 0:
			m[k] = String("")
		case 1:
			m[k] = String(vs[0])
		default:
			m[k] = stringSeq(vs)
		}
	}
	return Value{kind: KindMap, m: m}
}
