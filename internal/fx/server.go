package fx

import (
	"context"
	"net/http"

	"CreditCtrl/config"
	"CreditCtrl/internal/logger"
	"CreditCtrl/internal/middleware"
	"CreditCtrl/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimit(rateLimiter))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/user_credits/:user_id", handler.GetUserCredits)
	router.POST("/plans_insert", handler.UploadPlans)
	router.GET("/plans_performance/:date", handler.GetMonthPerformance)
	router.GET("/year_performance/:year", handler.GetYearPerformance)

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping...")
			return nil
		},
	})
}
