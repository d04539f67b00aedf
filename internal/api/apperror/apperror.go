// Package apperror writes the JSON error body shared by the v0 APIs.
package apperror

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "invalid_request"
	CodeInternal       = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Retryable    bool   `json:"retryable"`
}

func Abort(c *gin.Context, status int, code, message string, retryable bool) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		ErrorCode:    code,
		ErrorMessage: message,
		Retryable:    retryable,
	})
}

func NotFound(c *gin.Context, code, message string) {
	Abort(c, http.StatusNotFound, code, message, false)
}

func Conflict(c *gin.Context, code, message string) {
	Abort(c, http.StatusConflict, code, message, false)
}

func InvalidRequest(c *gin.Context, err error) {
	Abort(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), false)
}

// Internal logs err and hides it from the client.
func Internal(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "Request failed",
		"path", c.FullPath(), "error", err)
	Abort(c, http.StatusInternalServerError, CodeInternal, "internal error", true)
}
