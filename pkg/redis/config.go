package redis

import "time"

// Config describes the Redis connection and the shared query cache stored in it.
// An empty ConnectionURL leaves Redis disabled.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                  // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`        // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`       // pause between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`     // upper bound for Connect as a whole
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"paramkit:qs:"` // prefix of query cache keys
	QueryCacheTTL  time.Duration `env:"REDIS_QUERY_CACHE_TTL" envDefault:"10m"`     // 0 keeps entries until evicted by Redis
	OpTimeout      time.Duration `env:"REDIS_OP_TIMEOUT" envDefault:"100ms"`        // per-command timeout of the query cache
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
