package paramkit

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/paramkit/binder"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

type paramsKey struct{}

type bodyKey struct{}

var defaultAccessor = New(WithQueryCache(nil))

// WithParams stores p in ctx.
func WithParams(ctx context.Context, p *Params) context.Context {
	return context.WithValue(ctx, paramsKey{}, p)
}

// FromContext returns the Params stored by Middleware. Without them it
// returns empty Params, so lookups still yield "" and [].
func FromContext(ctx context.Context) *Params {
	if ctx != nil {
		if p, ok := ctx.Value(paramsKey{}).(*Params); ok && p != nil {
			return p
		}
	}
	return &Params{a: defaultAccessor, source: value.Map(nil)}
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) *Params {
	if r == nil {
		return FromContext(nil)
	}
	return FromContext(r.Context())
}

func withBody(ctx context.Context, b *binder.Body) context.Context {
	return context.WithValue(ctx, bodyKey{}, b)
}

// BodyFromContext returns the parsed body stored by Middleware, or nil.
// The nil Body is safe to use.
func BodyFromContext(ctx context.Context) *binder.Body {
	if ctx == nil {
		return nil
	}
	b, _ := ctx.Value(bodyKey{}).(*binder.Body)
	return b
}
