package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(GinMiddleware())
	engine.GET("/payout/api/v0/transfers/:transfer_id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	route := "/payout/api/v0/transfers/:transfer_id"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(route, http.MethodGet, "404"))
	unmatchedBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404"))

	for _, path := range []string{"/payout/api/v0/transfers/1", "/payout/api/v0/transfers/2", "/nowhere"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	t.Run("should label by route template", func(t *testing.T) {
		assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(route, http.MethodGet, "404")))
	})

	t.Run("should collapse unmatched paths", func(t *testing.T) {
		assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodGet, "404")))
	})
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "go_goroutines"))
}
