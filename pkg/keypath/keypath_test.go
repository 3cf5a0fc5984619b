package keypath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paramkit/pkg/keypath"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a"}, keypath.Split("a"))
	assert.Equal(t, []string{"a", "b", "c"}, keypath.Split("a.b.c"))
	assert.Equal(t, []string{"a", "", "b"}, keypath.Split("a..b"))
	assert.True(t, keypath.IsDotted("a.b"))
	assert.False(t, keypath.IsDotted("ab"))
}

func TestResolve(t *testing.T) {
	root := value.FromAny(map[string]any{
		"a":     map[string]any{"b": 1, "c": map[string]any{"b": 2}},
		"list":  []any{map[string]any{"id": "x"}, "second"},
		"flat":  "v",
		"zero":  0,
		"no":    false,
		"a.b":   "literal dotted key",
		"empty": "",
	})

	tests := []struct {
		name     string
		key      string
		expected value.Value
	}{
		{"flat key", "flat", value.String("v")},
		{"dotted key", "a.b", value.Number(1)},
		{"deep dotted key", "a.c.b", value.Number(2)},
		{"no fallback search", "a.x.b", value.Missing()},
		{"missing intermediate", "x.b", value.Missing()},
		{"walk into scalar", "flat.x", value.Missing()},
		{"walk into zero", "zero.x", value.Missing()},
		{"sequence index", "list.0.id", value.String("x")},
		{"sequence second index", "list.1", value.String("second")},
		{"sequence out of range", "list.5", value.Missing()},
		{"sequence non-canonical index", "list.01", value.Missing()},
		{"sequence negative index", "list.-1", value.Missing()},
		{"false is found", "no", value.Bool(false)},
		{"zero is found", "zero", value.Number(0)},
		{"empty string is returned as is", "empty", value.String("")},
		{"absent flat key", "nope", value.Missing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keypath.Resolve(root, tt.key)
			assert.True(t, tt.expected.Equal(got), "key %q: expected %v, got %v", tt.key, tt.expected, got)
		})
	}
}

func TestResolve_NonMapRoot(t *testing.T) {
	assert.Equal(t, value.KindMissing, keypath.Resolve(value.Missing(), "a").Kind())
	assert.Equal(t, value.KindMissing, keypath.Resolve(value.String("x"), "a.b").Kind())
}

func TestResolve_NoSpecialCaseForBodyShape(t *testing.T) {
	// {a:{c:{b:1}}} has no a.b
	root := value.FromAny(map[string]any{"a": map[string]any{"c": map[string]any{"b": 1}}})
	assert.Equal(t, value.KindMissing, keypath.Resolve(root, "a.b").Kind())
}
