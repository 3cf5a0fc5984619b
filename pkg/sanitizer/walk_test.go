package sanitizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

func TestWalk(t *testing.T) {
	t.Run("escapes string leaves at every depth", func(t *testing.T) {
		in := value.FromAny(map[string]any{
			"a": "<i>",
			"b": []any{"<b>", map[string]any{"c": "<u>"}},
		})

		got := sanitizer.Walk(in, sanitizer.EscapeTags)
		expected := value.FromAny(map[string]any{
			"a": "&lt;i&gt;",
			"b": []any{"&lt;b&gt;", map[string]any{"c": "&lt;u&gt;"}},
		})
		assert.True(t, expected.Equal(got), "got %v", got)
	})

	t.Run("non-string leaves are untouched", func(t *testing.T) {
		ref := value.FileRef{Path: "/tmp/u/<x>.txt", Name: "<x>.txt", ModTime: time.Unix(1, 0)}
		in := value.Seq(value.Number(1), value.Bool(false), value.Missing(), value.File(ref))

		got := sanitizer.Walk(in, sanitizer.EscapeHTML)
		assert.True(t, in.Equal(got))

		f, ok := got.Index(3).AsFile()
		require.True(t, ok)
		assert.Equal(t, "<x>.txt", f.Name)
	})

	t.Run("nil escape defaults to EscapeHTML", func(t *testing.T) {
		got := sanitizer.Walk(value.String(`"<a>"`), nil)
		assert.True(t, value.String("&#34;&lt;a&gt;&#34;").Equal(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := value.Seq(value.String("<a>"))
		_ = sanitizer.Walk(in, sanitizer.EscapeHTML)
		assert.True(t, value.String("<a>").Equal(in.Index(0)))
	})

	t.Run("double walk double escapes", func(t *testing.T) {
		once := sanitizer.Walk(value.String("<a>"), sanitizer.EscapeHTML)
		twice := sanitizer.Walk(once, sanitizer.EscapeHTML)
		assert.False(t, once.Equal(twice))
		assert.True(t, value.String("&amp;lt;a&amp;gt;").Equal(twice))
	})
}
