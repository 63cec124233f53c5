package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/config"
	"github.com/animatch/animatch/internal/dataset"
	"github.com/animatch/animatch/internal/handlers"
	"github.com/animatch/animatch/internal/middleware"
	"github.com/animatch/animatch/internal/services"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	data     *dataset.Provider
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	// Load datasets into the initial snapshot
	data, err := dataset.NewProvider(cfg.Data, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}
	app.data = data

	// Initialize services
	svcs, err := services.New(cfg, app.logger, data)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = svcs

	// Initialize handlers
	app.handlers = handlers.New(app.logger, svcs, data)

	// Setup router
	app.setupRouter()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")
	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Health check endpoint
	router.GET("/health", a.handlers.Health.Check)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/recommendations", a.handlers.Recommendation.Recommend)

		api.GET("/pages/:page", a.handlers.Pages.GetPage)
		api.GET("/community/picks", a.handlers.Pages.CommunityPicks)
		api.POST("/feedback", a.handlers.Pages.SubmitFeedback)

		admin := api.Group("/admin")
		{
			admin.POST("/datasets/reload", a.handlers.Admin.ReloadDatasets)
		}
	}

	a.router = router
}
