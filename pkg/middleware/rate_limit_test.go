package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/klowq/admin-dashboard/pkg/metrics"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	before := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2))
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/ok", nil)).Code)
	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/ok", nil)).Code)

	require.Equal(t, before+2, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/limited", nil)).Code)

	w2 := serve(r, httptest.NewRequest("GET", "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "1", w2.Header().Get("Retry-After"))

	// one token is back after 0.5s
	time.Sleep(600 * time.Millisecond)
	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/limited", nil)).Code)
}

func TestRateLimitMiddleware_SeparateInstances(t *testing.T) {
	r := gin.New()
	r.GET("/a", RateLimitMiddleware(0.1, 1), func(c *gin.Context) { c.Status(200) })
	r.GET("/b", RateLimitMiddleware(0.1, 1), func(c *gin.Context) { c.Status(200) })

	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/a", nil)).Code)
	require.Equal(t, http.StatusOK, serve(r, httptest.NewRequest("GET", "/b", nil)).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest("GET", "/a", nil)).Code)
}

func TestRateLimitMiddleware_UsesUserWhenPresent(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextUser, admin)
		c.Next()
	})
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/u", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req1 := httptest.NewRequest("GET", "/u", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	require.Equal(t, http.StatusOK, serve(r, req1).Code)

	// same user from another address shares the bucket
	req2 := httptest.NewRequest("GET", "/u", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	require.Equal(t, http.StatusTooManyRequests, serve(r, req2).Code)
}
