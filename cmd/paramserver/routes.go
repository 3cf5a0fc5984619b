package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/pkg/httpserver"
	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

var testKeys = []string{"a", "b", "c", "d", "e"}

func newRouter(acc *paramkit.Accessor, cfg paramkit.Config, log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, checks...))

	r.Group(func(r chi.Router) {
		r.Use(paramkit.Middleware(acc, cfg.Body, cfg.MiddlewareOptions()...))

		r.HandleFunc("/parameter", func(w http.ResponseWriter, r *http.Request) {
			p := paramkit.FromRequest(r)
			writeJSON(w, log, map[string]value.Value{"data": p.Get("a", xss(p))})
		})
		r.HandleFunc("/parameters", func(w http.ResponseWriter, r *http.Request) {
			p := paramkit.FromRequest(r)
			writeJSON(w, log, map[string]value.Value{"data": p.GetAll("a", xss(p))})
		})
		r.HandleFunc("/destruction_parameter", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, log, map[string]value.Value{"data": paramkit.FromRequest(r).Get("a.b")})
		})
		r.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, log, collect(paramkit.FromRequest(r).Get))
		})
		r.HandleFunc("/tests", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, log, collect(paramkit.FromRequest(r).GetAll))
		})
	})

	return r
}

// xss disables escaping when the request carries xss=false.
func xss(p *paramkit.Params) paramkit.GetOption {
	if on, ok := p.Get("xss", paramkit.Sanitize(false)).AsBool(); ok && !on {
		return paramkit.Sanitize(false)
	}
	return paramkit.Sanitize(true)
}

func collect(get func(string, ...paramkit.GetOption) value.Value) map[string]value.Value {
	out := make(map[string]value.Value, len(testKeys))
	for _, k := range testKeys {
		out[k] = get(k)
	}
	return out
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", logger.Error(err))
	}
}
