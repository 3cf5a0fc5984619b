// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is canceled or SIGINT/SIGTERM arrives, then calls
// Shutdown with the configured timeout. LivenessHandler serves liveness
// probes and HealthCheckHandler serves readiness probes.
package httpserver
