package controller

import (
	"net/http"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Gemini *service.GeminiService
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, gemini *service.GeminiService) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Gemini: gemini}
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports database, cache and generative API availability
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	redisState := "up"
	if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		redisState = "down"
	}

	geminiState := "up"
	if !c.Gemini.Available() {
		geminiState = "fallback"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"redis":    redisState,
			"gemini":   geminiState,
		},
	})
}
