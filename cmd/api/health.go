package main

import (
	"net/http"
	"time"

	"github.com/afraz-rupak/weather-forecast/internal/prediction"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp" example:"2025-06-01T10:30:00+10:00"`
	Models    prediction.ModelStatus `json:"models"`
}

// handleHealth godoc
// @Summary Health check
// @Description Check if the API is running and which prediction models are loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health/ [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "Welcome to the Weather Prediction API! All systems operational and ready to forecast Sydney's weather.",
		Timestamp: time.Now().Format(time.RFC3339),
		Models:    app.predictionService.Status(),
	})
}
