package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limiterRouter(l *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doRequest(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestIPRateLimiterBlocksOverBudget(t *testing.T) {
	l := NewIPRateLimiter(1, time.Minute)
	router := limiterRouter(l)

	assert.Equal(t, http.StatusOK, doRequest(router))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router))
}

func TestIPRateLimiterSetLimitsTakesEffect(t *testing.T) {
	l := NewIPRateLimiter(1, time.Minute)
	router := limiterRouter(l)

	assert.Equal(t, http.StatusOK, doRequest(router))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router))

	l.SetLimits(100, time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(router))
	assert.Equal(t, http.StatusOK, doRequest(router))
}

func TestIPRateLimiterDefaultsBadValues(t *testing.T) {
	l := NewIPRateLimiter(0, 0)
	assert.Equal(t, 1000, l.burst)
	assert.Equal(t, time.Minute, l.window)
}
