package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"PaymentService/pkg/correlation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

func TestCorrelationHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCorrelationHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := correlation.WithID(context.Background(), "corr-123")
	l.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "corr-123", record["correlation_id"])
}

func TestCorrelationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(CorrelationMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, correlation.FromContext(c.Request.Context()))
	})

	t.Run("propagates incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(correlation.HeaderName, "given-id")
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, req)

		assert.Equal(t, "given-id", w.Body.String())
		assert.Equal(t, "given-id", w.Header().Get(correlation.HeaderName))
	})

	t.Run("generates id when header is missing", func(t *testing.T) {
		w := httptest.NewRecorder()

		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(correlation.HeaderName))
	})
}
