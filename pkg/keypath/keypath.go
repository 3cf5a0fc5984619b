package keypath

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Separator splits a dotted key into path segments.
const Separator = "."

// IsDotted reports whether key addresses a nested value.
func IsDotted(key string) bool {
	return strings.Contains(key, Separator)
}

// Split breaks a dotted key into its segments. Empty segments are kept, so
// "a..b" addresses the key "" inside "a".
func Split(key string) []string {
	return strings.Split(key, Separator)
}

// Resolve looks up key in root. Keys without a dot are looked up directly;
// dotted keys are walked segment by segment with Lookup.
func Resolve(root value.Value, key string) value.Value {
	if !IsDotted(key) {
		v, _ := root.Get(key)
		return v
	}
	return Lookup(root, Split(key))
}

// Lookup walks root along segments. A segment indexes a Map by key or a Seq
// by decimal position. The walk stops at the first segment that is absent or
// lands on a scalar, and Missing is returned; there is no fallback search.
func Lookup(root value.Value, segments []string) value.Value {
	cur := root
	for _, seg := range segments {
		next, ok := step(cur, seg)
		if !ok {
			return value.Missing()
		}
		cur = next
	}
	return cur
}

func step(cur value.Value, seg string) (value.Value, bool) {
	switch cur.Kind() {
	case value.KindMap:
		return cur.Get(seg)
	case value.KindSeq:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= cur.Len() || strconv.Itoa(i) != seg {
			return value.Missing(), false
		}
		return cur.Index(i), true
	default:
		return value.Missing(), false
	}
}
