package paramkit

import (
	"log/slog"

	"github.com/dmitrymomot/paramkit/pkg/qs"
)

// Option configures an Accessor.
type Option func(*Accessor)

// WithQueryCache replaces the query cache. A nil cache disables memoization.
func WithQueryCache(c QueryCache) Option {
	return func(a *Accessor) { a.cache = c }
}

// WithSanitizer sets the escape function applied to string leaves.
// See sanitizer.PolicyByName for the built-in policies.
func WithSanitizer(escape func(string) string) Option {
	return func(a *Accessor) {
		if escape != nil {
			a.escape = escape
		}
	}
}

// WithJSONDefaults decodes defaults shaped like JSON arrays or objects, so
// Default("[1,2]") yields a sequence. Malformed literals stay strings.
func WithJSONDefaults() Option {
	return func(a *Accessor) { a.jsonDefaults = true }
}

// WithQueryOptions sets the decoder options used for query strings.
func WithQueryOptions(opts ...qs.Option) Option {
	return func(a *Accessor) { a.qsOpts = append(a.qsOpts, opts...) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Accessor) {
		if l != nil {
			a.logger = l
		}
	}
}

// GetOption tunes a single lookup.
type GetOption func(*getOptions)

type getOptions struct {
	def        any
	hasDefault bool
	sanitize   bool
}

// Default is used when the parameter is missing or empty. It is coerced
// like request data, so Default("10") yields the number 10.
func Default(v any) GetOption {
	return func(o *getOptions) {
		o.def = v
		o.hasDefault = true
	}
}

// Sanitize toggles escaping of the returned strings. Enabled by default.
func Sanitize(enabled bool) GetOption {
	return func(o *getOptions) { o.sanitize = enabled }
}

func newGetOptions(opts []GetOption) getOptions {
	o := getOptions{sanitize: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
