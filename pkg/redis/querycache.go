package redis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

// QueryCache stores coerced query maps in Redis so that several processes
// share one cache. It satisfies paramkit.QueryCache.
//
// Redis failures are logged and reported as misses; a lookup never fails.
type QueryCache struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

// QueryCacheOption configures a QueryCache.
type QueryCacheOption func(*QueryCache)

// WithKeyPrefix sets the key prefix. Default "paramkit:qs:".
func WithKeyPrefix(prefix string) QueryCacheOption {
	return func(c *QueryCache) { c.prefix = prefix }
}

// WithTTL sets the expiration of stored entries. Zero means no expiration.
func WithTTL(ttl time.Duration) QueryCacheOption {
	return func(c *QueryCache) { c.ttl = max(ttl, 0) }
}

// WithTimeout bounds every Redis command issued by the cache.
func WithTimeout(d time.Duration) QueryCacheOption {
	return func(c *QueryCache) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report Redis failures.
func WithLogger(l *slog.Logger) QueryCacheOption {
	return func(c *QueryCache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewQueryCache creates a QueryCache on top of client.
func NewQueryCache(client redis.UniversalClient, opts ...QueryCacheOption) *QueryCache {
	c := &QueryCache{
		client:  client,
		prefix:  "paramkit:qs:",
		timeout: 100 * time.Millisecond,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("redis_query_cache"))
	return c
}

// NewQueryCacheFromConfig creates a QueryCache using the prefix, TTL and
// timeout of cfg.
func NewQueryCacheFromConfig(client redis.UniversalClient, cfg Config, opts ...QueryCacheOption) *QueryCache {
	base := []QueryCacheOption{WithTTL(cfg.QueryCacheTTL), WithTimeout(cfg.OpTimeout)}
	if cfg.KeyPrefix != "" {
		base = append(base, WithKeyPrefix(cfg.KeyPrefix))
	}
	return NewQueryCache(client, append(base, opts...)...)
}

// entry keeps the raw query next to the value; keys are hashes and may collide.
type entry struct {
	Query string      `json:"q"`
	Value value.Value `json:"v"`
}

// Key returns the Redis key used for rawQuery.
func (c *QueryCache) Key(rawQuery string) string {
	return c.prefix + strconv.FormatUint(xxhash.Sum64String(rawQuery), 16)
}

// Get returns the cached value of rawQuery.
func (c *QueryCache) Get(rawQuery string) (value.Value, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	data, err := c.client.Get(ctx, c.Key(rawQuery)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("query cache read failed", logger.Query(rawQuery), logger.Error(err))
		}
		return value.Missing(), false
	}
	return c.decode(rawQuery, data)
}

// Put stores v for rawQuery and returns the value it replaced, if any.
func (c *QueryCache) Put(rawQuery string, v value.Value) (value.Value, bool) {
	data, err := json.Marshal(entry{Query: rawQuery, Value: v})
	if err != nil {
		c.logger.Warn("query cache encode failed", logger.Query(rawQuery), logger.Error(err))
		return value.Missing(), false
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	key := c.Key(rawQuery)
	pipe := c.client.TxPipeline()
	prev := pipe.Get(ctx, key)
	pipe.Set(ctx, key, data, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("query cache write failed", logger.Query(rawQuery), logger.Error(err))
		return value.Missing(), false
	}

	old, err := prev.Bytes()
	if err != nil {
		return value.Missing(), false
	}
	return c.decode(rawQuery, old)
}

func (c *QueryCache) decode(rawQuery string, data []byte) (value.Value, bool) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("query cache entry is corrupted", logger.Query(rawQuery), logger.Error(err))
		return value.Missing(), false
	}
	if e.Query != rawQuery {
		return value.Missing(), false
	}
	return e.Value, true
}
