package employee

import (
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, cfg *config.Config) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(cfg))
	{
		employees.GET("", middleware.RequireRole(RoleHR), h.GetAll)
	}
}
