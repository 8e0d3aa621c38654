package auth

import (
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		// Credential guessing gets throttled per source address.
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg), h.Me)
	}
}
