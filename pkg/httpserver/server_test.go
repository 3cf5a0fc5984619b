package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, opts ...httpserver.Option) (*httpserver.Server, string, <-chan error) {
	t.Helper()

	started := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(time.Second),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	select {
	case addr := <-started:
		return srv, addr, done
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	return nil, "", nil
}

func TestRunAndCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, addr, done := startServer(t, ctx)
	assert.Equal(t, addr, srv.Addr())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not return")
	}
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdown(t *testing.T) {
	srv, _, done := startServer(t, context.Background())
	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not return")
	}
}

func TestRunTwice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, _, _ := startServer(t, ctx)

	err := srv.Run(ctx, nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
}

func TestRunBadAddr(t *testing.T) {
	err := httpserver.New(httpserver.WithAddr("256.0.0.1:bad")).Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestNewFromConfig(t *testing.T) {
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	srv = httpserver.NewFromConfig(httpserver.Config{})
	assert.Equal(t, ":8080", srv.Addr())
}

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks []func(context.Context) error
		code   int
		body   string
	}{
		{"no checks", nil, http.StatusOK, "READY"},
		{"ready", []func(context.Context) error{func(context.Context) error { return nil }}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{func(context.Context) error { return errors.New("down") }}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
