package app

import (
	"net/http"

	"github.com/pauldemian98/portal-rh/internal/auth"
	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/employee"
	"github.com/pauldemian98/portal-rh/internal/messaging/kafka"
	"github.com/pauldemian98/portal-rh/internal/punch"
	"github.com/pauldemian98/portal-rh/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(employeeRepo, cfg)
	employeeService := employee.NewService(employeeRepo)
	punchService := punch.NewService(gormDB, punchRepo, outboxRepo)
	reportService := report.NewService(
		punchService,
		employeeRepo,
		report.NewRedisCache(rdb, cfg.ReportCacheTTL),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg)
	employeeHandler := employee.NewHandler(employeeService)
	punchHandler := punch.NewHandler(punchService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg)
		employee.RegisterRoutes(api, employeeHandler, cfg)
		punch.RegisterRoutes(api, punchHandler, cfg, rdb)
		report.RegisterRoutes(api, reportHandler, cfg)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
