package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit"
	"github.com/dmitrymomot/paramkit/pkg/redis"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

func newTestRouter(t *testing.T, opts ...paramkit.Option) http.Handler {
	t.Helper()

	cfg := paramkit.DefaultConfig()
	cfg.Body.UploadDir = t.TempDir()
	acc, err := paramkit.NewFromConfig(cfg, opts...)
	require.NoError(t, err)
	return newRouter(acc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, h http.Handler, req *http.Request) map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func get(t *testing.T, h http.Handler, target string) map[string]any {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
}

func postJSON(t *testing.T, h http.Handler, target, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, h, req)
}

func TestParameterEndpoints_Query(t *testing.T) {
	h := newTestRouter(t)
	script := url.QueryEscape(`<script>alert("xss")</script>`)
	escaped := "&lt;script&gt;alert(&#34;xss&#34;)&lt;/script&gt;"

	tests := []struct {
		name     string
		target   string
		expected any
	}{
		{"no parameters", "/parameter", ""},
		{"no parameters, all", "/parameters", []any{}},
		{"one parameter", "/parameter?a=1", float64(1)},
		{"one parameter, all", "/parameters?a=1", []any{float64(1)}},
		{"repeated", "/parameter?a[]=1&a[]=2&a[]=3", float64(1)},
		{"repeated, all", "/parameters?a[]=1&a[]=2&a[]=3", []any{float64(1), float64(2), float64(3)}},
		{"escaped", "/parameter?a=" + script, escaped},
		{"escaped, all", "/parameters?a=" + script, []any{escaped}},
		{"raw", "/parameter?xss=false&a=" + script, `<script>alert("xss")</script>`},
		{"raw, all", "/parameters?xss=false&a=" + script, []any{`<script>alert("xss")</script>`}},
		{"nested", "/parameter?a[num]=1", map[string]any{"num": float64(1)}},
		{"nested, all", "/parameters?a[num]=1", []any{map[string]any{"num": float64(1)}}},
		{"dotted", "/destruction_parameter?a[b]=1", float64(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, get(t, h, tt.target)["data"])
		})
	}

	t.Run("special characters change", func(t *testing.T) {
		out := get(t, h, "/parameter?a="+url.QueryEscape("~!@#$%^^&&(())"))
		assert.NotEqual(t, "~!@#$%^^&&(())", out["data"])
	})
}

func TestTestEndpoints(t *testing.T) {
	h := newTestRouter(t)

	t.Run("single", func(t *testing.T) {
		out := get(t, h, `/test?a=null&b=false&c=undefined&d=%22%22&e=`)
		assert.Equal(t, map[string]any{
			"a": "null",
			"b": false,
			"c": "undefined",
			"d": "&#34;&#34;",
			"e": "",
		}, out)
	})

	t.Run("all", func(t *testing.T) {
		out := get(t, h, `/tests?a=null&b=false&c=undefined&d=%22%22&e=`)
		assert.Equal(t, map[string]any{
			"a": []any{"null"},
			"b": []any{false},
			"c": []any{"undefined"},
			"d": []any{"&#34;&#34;"},
			"e": []any{},
		}, out)
	})

	t.Run("post", func(t *testing.T) {
		out := postJSON(t, h, "/test", `{"a":"null","b":"false","c":"undefined","d":""}`)
		assert.Equal(t, map[string]any{
			"a": "null",
			"b": false,
			"c": "undefined",
			"d": "",
			"e": "",
		}, out)
	})
}

func TestParameterEndpoints_Body(t *testing.T) {
	h := newTestRouter(t)

	t.Run("empty post", func(t *testing.T) {
		assert.Equal(t, "", do(t, h, httptest.NewRequest(http.MethodPost, "/parameter", nil))["data"])
		assert.Equal(t, []any{}, do(t, h, httptest.NewRequest(http.MethodPost, "/parameters", nil))["data"])
	})

	t.Run("one parameter", func(t *testing.T) {
		assert.Equal(t, float64(1), postJSON(t, h, "/parameter", `{"a":"1"}`)["data"])
		assert.Equal(t, []any{float64(1)}, postJSON(t, h, "/parameters", `{"a":"1"}`)["data"])
	})

	t.Run("escaping", func(t *testing.T) {
		body := `{"a":"<script>alert(\"xss\")</script>"}`
		assert.Equal(t, "&lt;script&gt;alert(&#34;xss&#34;)&lt;/script&gt;", postJSON(t, h, "/parameter", body)["data"])

		raw := `{"xss":"false","a":"<script>alert(\"xss\")</script>"}`
		assert.Equal(t, `<script>alert("xss")</script>`, postJSON(t, h, "/parameter", raw)["data"])
		assert.Equal(t, []any{`<script>alert("xss")</script>`}, postJSON(t, h, "/parameters", raw)["data"])
	})

	t.Run("dotted", func(t *testing.T) {
		assert.Equal(t, float64(1), postJSON(t, h, "/destruction_parameter", `{"a":{"b":"1"}}`)["data"])
		assert.Equal(t, "", postJSON(t, h, "/destruction_parameter", `{"a":{"c":{"b":1}}}`)["data"])
	})

	t.Run("form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/parameters", strings.NewReader("a[]=x&a[]=2"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, []any{"x", float64(2)}, do(t, h, req)["data"])
	})
}

func TestParameterEndpoints_Upload(t *testing.T) {
	h := newTestRouter(t)

	upload := func(target string) *http.Request {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("a", "package.json")
		require.NoError(t, err)
		_, err = fw.Write([]byte(`{"name":"paramkit"}`))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, target, &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req
	}

	single, ok := do(t, h, upload("/parameter"))["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "package.json", single["name"])

	all, ok := do(t, h, upload("/parameters"))["data"].([]any)
	require.True(t, ok)
	require.Len(t, all, 1)
	assert.Equal(t, "package.json", all[0].(map[string]any)["name"])
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestRouter_RedisQueryCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	qc := redis.NewQueryCache(client)
	cfg := paramkit.DefaultConfig()
	acc, err := paramkit.NewFromConfig(cfg, paramkit.WithQueryCache(qc))
	require.NoError(t, err)
	h := newRouter(acc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), redis.Healthcheck(client))

	for range 2 {
		assert.Equal(t, float64(7), get(t, h, "/parameter?a=7")["data"])
	}
	assert.True(t, mr.Exists(qc.Key("a=7")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, "READY", rec.Body.String())

	mr.Close()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
