package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Run("up with no checkers", func(t *testing.T) {
		res := NewRegistry().CheckAll(context.Background())
		assert.Equal(t, StatusUp, res.Status)
		assert.Empty(t, res.Checks)
	})

	t.Run("down when any checker is down", func(t *testing.T) {
		registry := NewRegistry(
			NewPostgresChecker("postgres_primary", stubPinger{}),
			NewPostgresChecker("postgres_replica", stubPinger{err: errors.New("connection refused")}),
		)

		res := registry.CheckAll(context.Background())

		assert.Equal(t, StatusDown, res.Status)
		require.Len(t, res.Checks, 2)
		assert.Equal(t, "postgres_primary", res.Checks[0].Name)
		assert.Equal(t, StatusUp, res.Checks[0].Status)
		assert.Equal(t, "postgres_replica", res.Checks[1].Name)
		assert.Equal(t, "connection refused", res.Checks[1].Message)
	})

	t.Run("added checkers take part", func(t *testing.T) {
		registry := NewRegistry()
		registry.Add(NewPostgresChecker("postgres_primary", stubPinger{err: context.DeadlineExceeded}))

		res := registry.CheckAll(context.Background())

		assert.Equal(t, StatusDown, res.Status)
		assert.Equal(t, context.DeadlineExceeded.Error(), res.Checks[0].Message)
	})
}

func TestLivenessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/health/live", LivenessHandler("payments"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"service":"payments","status":"up"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		pinger   stubPinger
		expected int
	}{
		{name: "ready", pinger: stubPinger{}, expected: http.StatusOK},
		{name: "not ready", pinger: stubPinger{err: errors.New("timeout")}, expected: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health/ready", ReadinessHandler(NewRegistry(NewPostgresChecker("postgres_primary", tc.pinger)), time.Second))

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}
