package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

func BenchmarkEscapeHTML(b *testing.B) {
	input := `<script>alert("xss")</script> & some plain text`
	for b.Loop() {
		_ = sanitizer.EscapeHTML(input)
	}
}

func BenchmarkPreventXSS(b *testing.B) {
	input := `<div onclick="bad()"><script>x()</script>content</div>`
	for b.Loop() {
		_ = sanitizer.PreventXSS(input)
	}
}

func BenchmarkCompose(b *testing.B) {
	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.StripScriptTags, sanitizer.EscapeTags)
	input := "  hi <b><script>x()</script>  "
	for b.Loop() {
		_ = clean(input)
	}
}

func BenchmarkWalk(b *testing.B) {
	v := value.FromAny(map[string]any{
		"q":    "<b>bold</b>",
		"tags": []any{"<a>", "b", 1, true},
		"user": map[string]any{"name": "<bob>", "age": 30},
	})
	for b.Loop() {
		_ = sanitizer.Walk(v, sanitizer.EscapeHTML)
	}
}
