// Command paramserver serves a small set of endpoints that echo request
// parameters as JSON. It exercises paramkit end to end: query and body
// decoding, coercion, defaults, sanitization and uploads.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/pkg/config"
	"github.com/dmitrymomot/paramkit/pkg/httpserver"
	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/redis"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"paramserver"`

	HTTP   httpserver.Config
	Params paramkit.Config
	Redis  redis.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	opts := []paramkit.Option{paramkit.WithLogger(log)}
	var checks []func(context.Context) error

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		opts = append(opts, paramkit.WithQueryCache(redis.NewQueryCacheFromConfig(client, cfg.Redis, redis.WithLogger(log))))
		checks = append(checks, redis.Healthcheck(client))
		log.InfoContext(ctx, "query cache shared through redis")
	}

	acc, err := paramkit.NewFromConfig(cfg.Params, opts...)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(acc, cfg.Params, log, checks...))
}
