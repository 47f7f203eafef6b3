package routes

import (
	"context"
	"net/http"

	domainerr "github.com/amirhossein-jamali/safekeep/internal/domain/error"
	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the service can reach its dependencies
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handlers groups the API handlers
type Handlers struct {
	Admin        *handler.AdminHandler
	Notification *handler.NotificationHandler
	Record       *handler.RecordHandler
}

// SetupRoutes configures all the routes for the API.
// metricsHandler and health may be nil to leave their endpoints out.
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	auth gin.HandlerFunc,
	metricsPath string,
	metricsHandler http.Handler,
	health HealthChecker,
) {
	v1 := router.Group("/v1")

	admin := v1.Group("/admin")
	{
		admin.GET("/cycle", handlers.Admin.GetCycle)
		admin.PUT("/cycle", auth, handlers.Admin.SetCycle)
		admin.POST("/assets", auth, handlers.Admin.AddAsset)
		admin.DELETE("/assets/:id", auth, handlers.Admin.RemoveAsset)
	}

	v1.GET("/assets", handlers.Admin.ListAssets)

	v1.POST("/notifications/transfer", auth, handlers.Notification.HandleTransfer)

	records := v1.Group("/records")
	{
		records.GET("/:owner", handlers.Record.ListRecords)
		records.GET("/:owner/:startTime", handlers.Record.GetRecord)
		records.POST("/:owner/:startTime/withdraw", auth, handlers.Record.Withdraw)
		records.PUT("/:owner/:startTime/repeat", auth, handlers.Record.ChangeRepeat)
	}

	v1.GET("/vaults/:vault/records/:owner/:startTime/exists", handlers.Record.RecordExists)

	if metricsHandler != nil {
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}

	router.GET("/healthz", func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
					Code:    domainerr.CodeDatabase,
					Message: "database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API; observer may be nil
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	observer middleware.HTTPObserver,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	if observer != nil {
		router.Use(middleware.Metrics(observer, timeProvider))
	}
}
