package paramkit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/paramkit/binder"
	"github.com/dmitrymomot/paramkit/pkg/logger"
)

// ErrorHandler answers requests whose body could not be parsed.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler replies with 413 for oversized bodies and 400 for
// malformed ones.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	status := binder.StatusCode(err)
	http.Error(w, http.StatusText(status), status)
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

type middlewareOptions struct {
	errorHandler ErrorHandler
	keepUploads  bool
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithKeepUploads leaves uploaded files on disk after the handler returns.
func WithKeepUploads(keep bool) MiddlewareOption {
	return func(o *middlewareOptions) { o.keepUploads = keep }
}

// Middleware parses the request body, binds the request parameters and
// stores them in the request context for FromRequest. Uploaded files are
// removed once the handler returns unless WithKeepUploads(true) is given.
//
//	r := chi.NewRouter()
//	r.Use(paramkit.Middleware(acc, binder.DefaultConfig()))
//	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
//		page := paramkit.FromRequest(r).Int("page", 1)
//	})
func Middleware(a *Accessor, cfg binder.Config, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if a == nil {
		a = New()
	}
	o := middlewareOptions{errorHandler: DefaultErrorHandler}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			body, err := binder.Parse(r, cfg, a.qsOpts...)
			if err != nil {
				a.logger.WarnContext(ctx, "failed to parse request body",
					logger.Method(r.Method),
					logger.Error(err),
				)
				o.errorHandler(w, r, err)
				return
			}
			if !o.keepUploads {
				defer func() {
					if err := body.Cleanup(); err != nil {
						a.logger.WarnContext(ctx, "failed to remove uploads", logger.Error(err))
					}
				}()
			}

			params := a.Bind(Input{
				Method:   r.Method,
				RawQuery: r.URL.RawQuery,
				Body:     body.Values(),
			})

			if a.logger.Enabled(ctx, slog.LevelDebug) {
				a.logger.DebugContext(ctx, "parameters bound",
					logger.Group("request",
						logger.Method(r.Method),
						logger.Query(r.URL.RawQuery),
					),
					slog.Bool("from_query", params.FromQuery()),
					logger.Duration(time.Since(start)),
				)
			}

			ctx = withBody(WithParams(ctx, params), body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
