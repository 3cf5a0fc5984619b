package sanitizer

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptTagRe    = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript\s*:`)

	dangerousAttrRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*style\s*=\s*["'][^"']*expression[^"']*["']`),
		regexp.MustCompile(`(?i)\s*href\s*=\s*["']javascript:[^"']*["']`),
		regexp.MustCompile(`(?i)\s*src\s*=\s*["']javascript:[^"']*["']`),
	}

	tagReplacer = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// EscapeHTML escapes <, >, &, ' and " so the result is safe to embed in HTML
// text and quoted attribute values.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// EscapeTags escapes only < and >. Quotes and ampersands are left as typed,
// so `<script>alert("x")</script>` becomes `&lt;script&gt;alert("x")&lt;/script&gt;`.
// The result is safe as HTML text content but not inside attribute values.
func EscapeTags(s string) string {
	return tagReplacer.Replace(s)
}

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRe.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes on* event handler attributes and javascript: protocols.
func RemoveJavaScriptEvents(s string) string {
	result := eventHandlerRe.ReplaceAllString(s, "")
	return jsProtocolRe.ReplaceAllString(result, "")
}

// SanitizeHTMLAttributes removes attributes that execute script through
// CSS expressions or javascript: URLs.
func SanitizeHTMLAttributes(s string) string {
	result := s
	for _, re := range dangerousAttrRes {
		result = re.ReplaceAllString(result, "")
	}
	return result
}

// PreventXSS strips scripts and script-bearing attributes, then escapes what remains.
func PreventXSS(s string) string {
	return Apply(s,
		StripScriptTags,
		SanitizeHTMLAttributes,
		RemoveJavaScriptEvents,
		EscapeHTML,
	)
}
