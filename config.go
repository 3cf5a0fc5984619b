package paramkit

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/paramkit/binder"
	"github.com/dmitrymomot/paramkit/pkg/cache"
	"github.com/dmitrymomot/paramkit/pkg/qs"
	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
	"github.com/dmitrymomot/paramkit/pkg/value"
)

// Config is the environment driven configuration for an Accessor and its
// Middleware. Load it with config.Load.
type Config struct {
	Body binder.Config

	QueryCacheSize int           `env:"PARAM_QUERY_CACHE_SIZE" envDefault:"1000"`
	QueryCacheTTL  time.Duration `env:"PARAM_QUERY_CACHE_TTL" envDefault:"0s"`
	JSONDefaults   bool          `env:"PARAM_JSON_DEFAULTS" envDefault:"false"`
	SanitizePolicy string        `env:"PARAM_SANITIZE_POLICY" envDefault:"html"`
	KeepUploads    bool          `env:"PARAM_KEEP_UPLOADS" envDefault:"false"`

	Depth          int  `env:"PARAM_QS_DEPTH" envDefault:"5"`
	ArrayLimit     int  `env:"PARAM_QS_ARRAY_LIMIT" envDefault:"20"`
	ParameterLimit int  `env:"PARAM_QS_PARAMETER_LIMIT" envDefault:"1000"`
	AllowDots      bool `env:"PARAM_QS_ALLOW_DOTS" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Body:           binder.DefaultConfig(),
		QueryCacheSize: DefaultQueryCacheSize,
		SanitizePolicy: sanitizer.PolicyHTML,
		Depth:          qs.DefaultDepth,
		ArrayLimit:     qs.DefaultArrayLimit,
		ParameterLimit: qs.DefaultParameterLimit,
	}
}

// QueryOptions returns the decoder options described by c.
func (c Config) QueryOptions() []qs.Option {
	opts := []qs.Option{
		qs.WithDepth(c.Depth),
		qs.WithArrayLimit(c.ArrayLimit),
		qs.WithParameterLimit(c.ParameterLimit),
	}
	if c.AllowDots {
		opts = append(opts, qs.WithAllowDots())
	}
	return opts
}

// MiddlewareOptions returns the Middleware options described by c.
func (c Config) MiddlewareOptions() []MiddlewareOption {
	return []MiddlewareOption{WithKeepUploads(c.KeepUploads)}
}

// NewFromConfig builds an Accessor from c. Options are applied after the
// configured ones. It fails only on an unknown sanitize policy.
func NewFromConfig(c Config, opts ...Option) (*Accessor, error) {
	escape, err := sanitizer.PolicyByName(c.SanitizePolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var qc QueryCache
	if c.QueryCacheSize > 0 {
		qc = cache.NewLRUCache[string, value.Value](c.QueryCacheSize, cache.WithTTL(c.QueryCacheTTL))
	}

	base := []Option{
		WithQueryCache(qc),
		WithSanitizer(escape),
		WithQueryOptions(c.QueryOptions()...),
	}
	if c.JSONDefaults {
		base = append(base, WithJSONDefaults())
	}
	return New(append(base, opts...)...), nil
}
