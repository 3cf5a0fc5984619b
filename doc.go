// Package paramkit reads request parameters from the query string or body
// with automatic typing, HTML escaping and nested key access.
//
// An Accessor is created once per process and shared:
//
//	acc := paramkit.New()
//	r.Use(paramkit.Middleware(acc, binder.DefaultConfig()))
//
// Handlers then read parameters through the request:
//
//	p := paramkit.FromRequest(r)
//	page := p.Get("page", paramkit.Default("1")) // Number(1)
//	ids := p.GetAll("ids")                      // Seq, even for ?ids=5
//	name := p.Get("user.name")                  // dotted path into nested data
//	raw := p.Get("html", paramkit.Sanitize(false))
//
// # Source selection
//
// Idempotent requests (GET, HEAD, PUT, DELETE, OPTIONS, TRACE) with a query
// string read the query; every other request reads the parsed body (JSON, urlencoded or multipart
// fields plus uploaded files). Query strings use bracket notation
// (a[]=1&a[]=2, a[b]=c) and the decoded, typed result is cached per raw query.
//
// # Typing
//
// String leaves "true" and "false" become booleans and numeric strings become
// numbers. Defaults go through the same rules, so Default("10") is the number
// 10. WithJSONDefaults additionally decodes defaults such as "[1,2]".
//
// # Absence
//
// A parameter that is missing or the empty string is absent. Get returns ""
// and GetAll returns an empty sequence for absent parameters; false and 0 are
// present. No lookup ever returns an error.
//
// # Escaping
//
// String leaves are HTML escaped unless Sanitize(false) is passed or the body
// holds an upload under the key. Escaping is applied on every lookup, so an
// escaped value passed back in gets escaped again.
package paramkit
