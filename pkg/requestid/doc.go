// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; otherwise it generates a UUID.
// The ID is echoed in the response header and stored in the request context.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
