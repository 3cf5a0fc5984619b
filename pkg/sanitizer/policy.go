package sanitizer

import (
	"fmt"
	"strings"
)

// Policy names accepted by PolicyByName.
const (
	PolicyHTML   = "html"
	PolicyTags   = "tags"
	PolicyStrict = "strict"
	PolicyNone   = "none"
)

// Identity returns s unchanged.
func Identity(s string) string { return s }

// PolicyByName resolves a configured policy name to an escape function.
//
//   - "html" (or empty): EscapeHTML
//   - "tags": EscapeTags
//   - "strict": PreventXSS
//   - "none": Identity
func PolicyByName(name string) (func(string) string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyHTML:
		return EscapeHTML, nil
	case PolicyTags:
		return EscapeTags, nil
	case PolicyStrict:
		return PreventXSS, nil
	case PolicyNone:
		return Identity, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
