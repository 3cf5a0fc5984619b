// Package sanitizer escapes strings before they are echoed back into HTML and
// applies an escape function to every string inside a value.
//
// Escape functions:
//
//   - EscapeHTML escapes <, >, &, ' and ". It is the default policy.
//   - EscapeTags escapes only angle brackets.
//   - PreventXSS strips script tags and script-bearing attributes, then
//     escapes what remains.
//   - Identity leaves strings untouched.
//
// PolicyByName maps configuration names ("html", "tags", "strict", "none") to
// these functions. Apply and Compose chain any number of string transforms:
//
//	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.StripScriptTags, sanitizer.EscapeHTML)
//
// Walk applies an escape function to every string leaf of a value.Value and
// leaves numbers, booleans and files alone:
//
//	safe := sanitizer.Walk(params, sanitizer.EscapeHTML)
//
// Escaping is not idempotent; walk a value once.
package sanitizer
