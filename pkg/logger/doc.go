// Package logger builds *slog.Logger instances from functional options and
// injects request scoped values from context.Context into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "paramserver"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "parameters bound", logger.Method(r.Method))
//
// New picks a JSON or text handler and wraps it in LogHandlerDecorator, which
// runs the registered ContextExtractor callbacks on each Handle call.
// Helpers in attr.go (Error, RequestID, Query, Param, ...) keep attribute
// keys consistent across packages.
package logger
