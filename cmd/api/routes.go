package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Project catalog and health
	app.router.GET("/", app.handleRoot)
	app.router.GET("/health/", app.handleHealth)

	// Prediction endpoints
	app.router.GET("/predict/rain/", app.handlePredictRain)
	app.router.GET("/predict/precipitation/fall/", app.handlePredictPrecipitation)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
