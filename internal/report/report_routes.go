package report

import (
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/employee"
	"github.com/pauldemian98/portal-rh/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, cfg *config.Config) {
	// Own summaries live under /punches next to the ledger routes.
	r.GET("/punches/summary", middleware.AuthMiddleware(cfg), h.MySummary)

	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(employee.RoleHR))
	{
		reports.GET("/punches", h.Punches)
		reports.GET("/punches/export", h.Export)
	}
}
