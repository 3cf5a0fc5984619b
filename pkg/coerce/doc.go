// Package coerce infers typed values from the strings found in query strings
// and form bodies.
//
// Rules, applied to every string leaf in this order:
//
//   - "true" and "false" become booleans (exact match, case-sensitive).
//   - Numeric strings become numbers. Surrounding whitespace is ignored and
//     decimal, exponent and 0x/0o/0b integer forms are accepted. The empty
//     string is not numeric.
//   - With WithJSONLiterals, strings shaped like a JSON array or object are
//     decoded and coerced recursively. Malformed literals stay strings and are
//     reported through WithErrorHook.
//   - Everything else is left unchanged.
//
// Sequences and mappings are coerced element by element; files pass through.
// Coerce builds a new value and is idempotent:
//
//	v := coerce.Raw(map[string]any{"page": "2", "active": "true", "q": "go"})
//	// {"page": 2, "active": true, "q": "go"}
package coerce
