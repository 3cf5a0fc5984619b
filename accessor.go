package paramkit

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paramkit/pkg/cache"
	"github.com/dmitrymomot/paramkit/pkg/coerce"
	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/qs"
	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

// DefaultQueryCacheSize is the number of distinct query strings memoized by
// an Accessor created without WithQueryCache.
const DefaultQueryCacheSize = 1000

// QueryCache memoizes coerced query maps by raw query string.
// *cache.LRUCache[string, value.Value] satisfies it.
type QueryCache interface {
	Get(rawQuery string) (value.Value, bool)
	Put(rawQuery string, v value.Value) (value.Value, bool)
}

// Accessor resolves request parameters. It is safe for concurrent use and
// meant to be shared by all requests of a process.
type Accessor struct {
	cache        QueryCache
	escape       func(string) string
	jsonDefaults bool
	qsOpts       []qs.Option
	logger       *slog.Logger
}

// New creates an Accessor. By default it escapes HTML in returned strings,
// memoizes up to DefaultQueryCacheSize query strings and logs nothing.
func New(opts ...Option) *Accessor {
	a := &Accessor{
		cache:  cache.NewLRUCache[string, value.Value](DefaultQueryCacheSize),
		escape: sanitizer.EscapeHTML,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("paramkit"))
	return a
}

// Input is the raw material for one request's parameters.
type Input struct {
	// Method is the HTTP method; idempotent methods read the query string.
	Method string
	// RawQuery is the query string without the leading "?".
	RawQuery string
	// Body is the parsed body mapping, uploads included.
	Body value.Value
}

// Bind selects and coerces the parameter source for one request.
//
// Idempotent methods (GET, HEAD, PUT, DELETE, OPTIONS, TRACE) with a
// non-empty query string use the query; everything else uses the body
// mapping. The result is computed once and shared by all lookups on the
// returned Params.
func (a *Accessor) Bind(in Input) *Params {
	p := &Params{a: a, source: value.Map(nil)}

	switch {
	case isIdempotent(in.Method) && in.RawQuery != "":
		p.source = a.query(in.RawQuery)
		p.fromQuery = true
	case in.Body.Kind() == value.KindMap && in.Body.Len() > 0:
		p.source = coerce.Coerce(in.Body)
		p.body = in.Body
	}
	return p
}

// query decodes and coerces rawQuery, going through the cache when set.
func (a *Accessor) query(rawQuery string) value.Value {
	if a.cache != nil {
		if v, ok := a.cache.Get(rawQuery); ok {
			a.logger.Debug("query cache hit", logger.Query(rawQuery))
			return v
		}
	}

	v := coerce.Coerce(qs.Decode(rawQuery, a.qsOpts...))

	if a.cache != nil {
		a.cache.Put(rawQuery, v)
		a.logger.Debug("query cache miss", logger.Query(rawQuery))
	}
	return v
}

// coerceDefault converts a caller supplied default with the same rules as
// request data. JSON literals are decoded only when enabled.
func (a *Accessor) coerceDefault(def any) value.Value {
	opts := []coerce.Option{}
	if a.jsonDefaults {
		opts = append(opts,
			coerce.WithJSONLiterals(),
			coerce.WithErrorHook(func(literal string, err error) {
				a.logger.Warn("malformed default literal", logger.Param(literal), logger.Error(err))
			}),
		)
	}
	return coerce.Raw(def, opts...)
}

// isIdempotent reports the RFC 7231 idempotent methods.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete,
		http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
