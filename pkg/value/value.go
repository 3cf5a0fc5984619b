package value

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindSeq
	KindMap
	KindFile
)

var kindNames = [...]string{
	KindMissing: "missing",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "bool",
	KindSeq:     "seq",
	KindMap:     "map",
	KindFile:    "file",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable tagged union holding one parameter value.
// The zero Value is Missing.
//
// Constructors copy their inputs and accessors never hand out internal
// storage, so a Value can be shared across goroutines without locking.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []Value
	m    map[string]Value
	file *FileRef
}

// Missing returns the absent value.
func Missing() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Seq returns an ordered sequence holding a copy of items.
func Seq(items ...Value) Value {
	return Value{kind: KindSeq, seq: slices.Clone(items)}
}

// Map returns a mapping holding a copy of m.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

// File returns a value wrapping an upload descriptor.
func File(ref FileRef) Value {
	return Value{kind: KindFile, file: &ref}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v counts as absent: the Missing variant or the
// empty string. Boolean false and numeric zero are present.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing || (v.kind == KindString && v.str == "")
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsFloat returns the number held by v.
func (v Value) AsFloat() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsInt returns the number held by v when it is integral and fits in int64.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber || v.num != math.Trunc(v.num) {
		return 0, false
	}
	if v.num < math.MinInt64 || v.num >= math.MaxInt64 {
		return 0, false
	}
	return int64(v.num), true
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsFile returns the upload descriptor held by v.
func (v Value) AsFile() (FileRef, bool) {
	if v.kind != KindFile || v.file == nil {
		return FileRef{}, false
	}
	return *v.file, true
}

// Len returns the number of elements of a Seq or entries of a Map, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq:
		return len(v.seq)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the i-th element of a Seq, or Missing when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindSeq || i < 0 || i >= len(v.seq) {
		return Missing()
	}
	return v.seq[i]
}

// Items returns a copy of the elements of a Seq.
func (v Value) Items() []Value {
	if v.kind != KindSeq {
		return nil
	}
	return slices.Clone(v.seq)
}

// Get returns the entry stored under key in a Map.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Missing(), false
	}
	e, ok := v.m[key]
	return e, ok
}

// Keys returns the sorted keys of a Map.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Equal reports deep equality. Numbers compare by value, files by descriptor.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindFile:
		a, _ := v.AsFile()
		b, _ := o.AsFile()
		return a.Equal(b)
	case KindSeq:
		return slices.EqualFunc(v.seq, o.seq, Value.Equal)
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, e := range v.m {
			oe, ok := o.m[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders scalars as text. Collections and files render as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindMissing:
		return ""
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		b, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Interface converts v into plain Go data: string, float64, bool, []any,
// map[string]any, FileRef or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindFile:
		ref, _ := v.AsFile()
		return ref
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
	case KindSeq:
		if len(v.seq) == 0 {
			return []byte("[]"), nil
		}
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler. Numbers decode as Number,
// objects as Map and null as Missing.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}
