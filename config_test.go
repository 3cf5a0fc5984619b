package paramkit_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/pkg/config"
	"github.com/dmitrymomot/paramkit/pkg/sanitizer"
)

func TestNewFromConfig(t *testing.T) {
	get := func(c paramkit.Config, raw, key string) string {
		a, err := paramkit.NewFromConfig(c)
		require.NoError(t, err)
		return a.Bind(paramkit.Input{Method: http.MethodGet, RawQuery: raw}).String(key, "")
	}

	t.Run("policies", func(t *testing.T) {
		tests := []struct {
			policy   string
			expected string
		}{
			{sanitizer.PolicyHTML, "&lt;a&gt; &amp; &#34;b&#34;"},
			{sanitizer.PolicyTags, `&lt;a&gt; & "b"`},
			{sanitizer.PolicyNone, `<a> & "b"`},
		}

		for _, tt := range tests {
			t.Run(tt.policy, func(t *testing.T) {
				c := paramkit.DefaultConfig()
				c.SanitizePolicy = tt.policy
				assert.Equal(t, tt.expected, get(c, "q=%3Ca%3E+%26+%22b%22", "q"))
			})
		}
	})

	t.Run("unknown policy", func(t *testing.T) {
		c := paramkit.DefaultConfig()
		c.SanitizePolicy = "bogus"
		_, err := paramkit.NewFromConfig(c)
		assert.ErrorIs(t, err, paramkit.ErrInvalidConfig)
	})

	t.Run("query options", func(t *testing.T) {
		c := paramkit.DefaultConfig()
		c.AllowDots = true
		assert.Equal(t, "1", get(c, "a.b=1", "a.b"))

		c = paramkit.DefaultConfig()
		c.Depth = 1
		assert.Equal(t, "1", get(c, "a[b][c]=1", "a.b.[c]"))
	})

	t.Run("json defaults", func(t *testing.T) {
		c := paramkit.DefaultConfig()
		c.JSONDefaults = true
		c.QueryCacheSize = 0
		c.QueryCacheTTL = time.Minute
		a, err := paramkit.NewFromConfig(c)
		require.NoError(t, err)

		p := a.Bind(paramkit.Input{Method: http.MethodGet, RawQuery: "x=1"})
		assert.Equal(t, []string{"1", "2"}, p.Strings("ids", paramkit.Default("[1,2]")))
	})
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("PARAM_SANITIZE_POLICY", "tags")
	t.Setenv("PARAM_JSON_LIMIT", "2048")
	t.Setenv("PARAM_QUERY_CACHE_TTL", "30s")
	t.Setenv("PARAM_QS_ALLOW_DOTS", "true")

	c, err := config.Parse[paramkit.Config]()
	require.NoError(t, err)

	assert.Equal(t, "tags", c.SanitizePolicy)
	assert.Equal(t, int64(2048), c.Body.JSONLimit)
	assert.Equal(t, 30*time.Second, c.QueryCacheTTL)
	assert.True(t, c.AllowDots)
	assert.Equal(t, paramkit.DefaultQueryCacheSize, c.QueryCacheSize)
	assert.Equal(t, 5, c.Depth)
	assert.Equal(t, int64(200<<20), c.Body.MaxFileSize)
}

func TestDefaultConfig(t *testing.T) {
	c := paramkit.DefaultConfig()
	assert.Equal(t, sanitizer.PolicyHTML, c.SanitizePolicy)
	assert.Equal(t, paramkit.DefaultQueryCacheSize, c.QueryCacheSize)
	assert.False(t, c.KeepUploads)
	assert.Len(t, c.MiddlewareOptions(), 1)
	assert.Len(t, c.QueryOptions(), 3)
}
