package punch

import (
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, cfg *config.Config, rdb *redis.Client) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware(cfg))
	{
		punches.POST("", middleware.RateLimitByEmployee(2, 5), middleware.Idempotency(rdb), h.Record)
		punches.GET("", h.List)
		punches.GET("/today", h.Today)
	}
}
