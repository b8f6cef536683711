package main

import (
	"log/slog"

	"github.com/afraz-rupak/weather-forecast/internal/config"
	"github.com/afraz-rupak/weather-forecast/internal/model"
	"github.com/afraz-rupak/weather-forecast/internal/prediction"
	"github.com/afraz-rupak/weather-forecast/internal/weather"

	"github.com/gin-gonic/gin"

	_ "github.com/afraz-rupak/weather-forecast/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	predictionService prediction.Service
	cfg               *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Load model artifacts; missing models degrade their endpoint to 503
	// instead of failing startup.
	models := model.LoadRegistry(cfg, logger)

	// Initialize services
	weatherSvc := weather.NewWeatherService(cfg, logger)
	predictionSvc := prediction.NewPredictionService(weatherSvc, models, logger)

	app := &App{
		router:            router,
		logger:            logger,
		predictionService: predictionSvc,
		cfg:               cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
