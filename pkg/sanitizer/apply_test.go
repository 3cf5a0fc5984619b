package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Run("applies transforms in order", func(t *testing.T) {
		result := sanitizer.Apply("  <b>  ",
			strings.TrimSpace,
			sanitizer.EscapeTags,
		)
		assert.Equal(t, "&lt;b&gt;", result)
	})

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, "x", sanitizer.Apply("x"))
	})

	t.Run("order matters", func(t *testing.T) {
		stripThenEscape := sanitizer.Apply("<script>x</script><i>", sanitizer.StripScriptTags, sanitizer.EscapeHTML)
		escapeThenStrip := sanitizer.Apply("<script>x</script><i>", sanitizer.EscapeHTML, sanitizer.StripScriptTags)

		assert.Equal(t, "&lt;i&gt;", stripThenEscape)
		assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;&lt;i&gt;", escapeThenStrip)
	})
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.StripScriptTags, sanitizer.EscapeTags)

	assert.Equal(t, "hi &lt;b&gt;", clean(" hi <b><script>x()</script> "))
	assert.Equal(t, "", clean("   "))
}
