package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleRoot godoc
// @Summary Project description
// @Description Project metadata and a catalog of the available endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (app *App) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"project":     "Weather Prediction API",
		"description": "AI-powered weather forecasting service providing rain predictions and precipitation forecasts for Sydney, Australia",
		"objectives": []string{
			"Predict if it will rain in exactly 7 days (binary classification)",
			"Predict cumulative precipitation amount for next 3 days (regression)",
		},
		"endpoints": gin.H{
			"/":                            "GET - Project description and documentation",
			"/health/":                     "GET - Health check and status",
			"/predict/rain/":               "GET - Rain prediction for 7 days ahead",
			"/predict/precipitation/fall/": "GET - 3-day precipitation forecast",
		},
		"input_parameters": gin.H{
			"date": "Required date parameter in YYYY-MM-DD format",
		},
		"github_repo": "https://github.com/afraz-rupak/weather-forecast",
		"location":    fmt.Sprintf("Sydney, Australia (%.4f, %.4f)", app.cfg.App.Latitude, app.cfg.App.Longitude),
	})
}
