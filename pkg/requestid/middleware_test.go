package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

func serve(t *testing.T, header string) (string, string) {
	t.Helper()

	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Run("generates a UUID", func(t *testing.T) {
		seen, echoed := serve(t, "")
		assert.Equal(t, seen, echoed)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("reuses valid IDs", func(t *testing.T) {
		for _, id := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
			seen, echoed := serve(t, id)
			assert.Equal(t, id, seen)
			assert.Equal(t, id, echoed)
		}
	})

	t.Run("replaces invalid IDs", func(t *testing.T) {
		invalid := []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, id := range invalid {
			seen, echoed := serve(t, id)
			assert.NotEqual(t, id, seen)
			assert.Equal(t, seen, echoed)
		}
	})
}

func TestContext(t *testing.T) {
	assert.Equal(t, "id-1", requestid.FromContext(requestid.WithContext(context.Background(), "id-1")))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "msg")
	var bare map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &bare))
	assert.NotContains(t, bare, "request_id")
}
