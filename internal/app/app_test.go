package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/pkg/logger"
	"trait_tracer_backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func TestApplyConfigPropagatesReloadableSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	assessment := service.NewAssessmentService(nil, nil, nil, nil, 20*time.Minute)
	a := &App{
		Config:      &config.Config{},
		services:    &services{assessment: assessment},
		rateLimiter: security.NewIPRateLimiter(1, time.Minute),
	}
	a.registerConfigCallbacks(a.services)

	router := gin.New()
	router.Use(a.rateLimiter.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	ping := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, ping())
	require.Equal(t, http.StatusTooManyRequests, ping())

	updated := &config.Config{}
	updated.Assessment.DurationSeconds = 60
	updated.RateLimit.MaxRequests = 100
	updated.RateLimit.WindowMinutes = 1
	a.ApplyConfig(updated)

	assert.Equal(t, time.Minute, assessment.Duration())
	assert.Equal(t, 60, a.Config.Assessment.DurationSeconds)
	assert.Equal(t, http.StatusOK, ping())
}
