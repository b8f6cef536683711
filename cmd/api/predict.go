package main

import (
	"errors"
	"net/http"

	"github.com/afraz-rupak/weather-forecast/internal/prediction"
	"github.com/afraz-rupak/weather-forecast/internal/types"

	"github.com/gin-gonic/gin"
)

// RainPredictionResponse wraps a rain prediction with its input date
type RainPredictionResponse struct {
	InputDate  types.Date                 `json:"input_date"`
	Prediction *prediction.RainPrediction `json:"prediction"`
}

// PrecipitationPredictionResponse wraps a precipitation prediction with its input date
type PrecipitationPredictionResponse struct {
	InputDate  types.Date                          `json:"input_date"`
	Prediction *prediction.PrecipitationPrediction `json:"prediction"`
}

// handlePredictRain godoc
// @Summary Rain prediction for 7 days ahead
// @Description Predict whether it will rain in Sydney exactly 7 days after the given date
// @Tags predictions
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format" example(2025-06-01)
// @Success 200 {object} RainPredictionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /predict/rain/ [get]
func (app *App) handlePredictRain(c *gin.Context) {
	date, ok := app.bindDate(c)
	if !ok {
		return
	}

	result, err := app.predictionService.PredictRain(date)
	if err != nil {
		app.renderPredictionError(c, "rain", date, err)
		return
	}

	c.JSON(http.StatusOK, RainPredictionResponse{
		InputDate:  date,
		Prediction: result,
	})
}

// handlePredictPrecipitation godoc
// @Summary 3-day precipitation forecast
// @Description Predict the cumulative precipitation amount in Sydney for the 3 days following the given date
// @Tags predictions
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format" example(2025-06-01)
// @Success 200 {object} PrecipitationPredictionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /predict/precipitation/fall/ [get]
func (app *App) handlePredictPrecipitation(c *gin.Context) {
	date, ok := app.bindDate(c)
	if !ok {
		return
	}

	result, err := app.predictionService.PredictPrecipitation(date)
	if err != nil {
		app.renderPredictionError(c, "precipitation", date, err)
		return
	}

	c.JSON(http.StatusOK, PrecipitationPredictionResponse{
		InputDate:  date,
		Prediction: result,
	})
}

// bindDate extracts and validates the required date query parameter. An
// absent parameter is a 422, a malformed one a 400; in both cases the
// response has already been written and false is returned.
func (app *App) bindDate(c *gin.Context) (types.Date, bool) {
	raw, exists := c.GetQuery("date")
	if !exists || raw == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "missing required query parameter: date"})
		return types.Date{}, false
	}

	date, err := types.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return types.Date{}, false
	}

	return date, true
}

func (app *App) renderPredictionError(c *gin.Context, endpoint string, date types.Date, err error) {
	if errors.Is(err, prediction.ErrModelUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	// Upstream failures, out-of-horizon dates, and inference errors all
	// surface as 500 with a summary but no internals beyond the message.
	app.logger.Error("prediction failed",
		"endpoint", endpoint,
		"date", date.String(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
