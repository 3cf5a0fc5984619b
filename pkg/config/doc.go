// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for optional .env files:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Load caches one copy per type for the life of the process; Parse always
// reads the current environment and is the better fit for tests. ResetCache
// clears the cache.
package config
