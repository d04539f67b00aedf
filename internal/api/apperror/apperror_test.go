package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.GET("/x", h, func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorResponses(t *testing.T) {
	t.Run("should write not found as non retryable", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) { NotFound(c, "thing_not_found", "thing not found") })

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrorResponse{ErrorCode: "thing_not_found", ErrorMessage: "thing not found"}, body)
	})

	t.Run("should write invalid request with error message", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) { InvalidRequest(c, errors.New("bad id")) })

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidRequest, body.ErrorCode)
		assert.Equal(t, "bad id", body.ErrorMessage)
		assert.False(t, body.Retryable)
	})

	t.Run("should hide internal error details and mark retryable", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) { Internal(c, errors.New("connection refused")) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, CodeInternal, body.ErrorCode)
		assert.NotContains(t, body.ErrorMessage, "connection refused")
		assert.True(t, body.Retryable)
	})

	t.Run("should abort the handler chain", func(t *testing.T) {
		w, _ := serve(t, func(c *gin.Context) { Conflict(c, "dup", "duplicate") })

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
