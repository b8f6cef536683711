package prediction

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/afraz-rupak/weather-forecast/internal/features"
	"github.com/afraz-rupak/weather-forecast/internal/model"
	"github.com/afraz-rupak/weather-forecast/internal/types"
	"github.com/afraz-rupak/weather-forecast/internal/weather"
)

// ErrModelUnavailable is returned when the model required by an endpoint was
// not loaded at startup.
var ErrModelUnavailable = errors.New("prediction model not available")

// RainPrediction is the rain classifier output: whether it will rain on the
// date seven days after the input date.
type RainPrediction struct {
	Date     types.Date `json:"date"`
	WillRain bool       `json:"will_rain"`
}

// PrecipitationPrediction is the regressor output: cumulative precipitation
// expected over the three days following the input date, in millimetres,
// formatted to one decimal place.
type PrecipitationPrediction struct {
	StartDate         types.Date `json:"start_date"`
	EndDate           types.Date `json:"end_date"`
	PrecipitationFall string     `json:"precipitation_fall"`
}

// ModelStatus reports which models are loaded, for the health endpoint.
type ModelStatus struct {
	RainModelLoaded          bool `json:"rain_model_loaded"`
	PrecipitationModelLoaded bool `json:"precipitation_model_loaded"`
}

type Service interface {
	PredictRain(date types.Date) (*RainPrediction, error)
	PredictPrecipitation(date types.Date) (*PrecipitationPrediction, error)
	Status() ModelStatus
}

type predictionService struct {
	weatherService weather.Service
	models         *model.Registry
	logger         *slog.Logger
}

func NewPredictionService(weatherService weather.Service, models *model.Registry, logger *slog.Logger) Service {
	return &predictionService{
		weatherService: weatherService,
		models:         models,
		logger:         logger.With("component", "prediction-service"),
	}
}

func (s *predictionService) Status() ModelStatus {
	return ModelStatus{
		RainModelLoaded:          s.models.Rain != nil,
		PrecipitationModelLoaded: s.models.Precipitation != nil,
	}
}

func (s *predictionService) PredictRain(date types.Date) (*RainPrediction, error) {
	if s.models.Rain == nil {
		return nil, fmt.Errorf("%w: rain classifier", ErrModelUnavailable)
	}

	bundle, err := s.weatherService.FetchForDate(date)
	if err != nil {
		return nil, err
	}

	vector := s.assemble(bundle.Daily, features.RainFeatureOrder, features.RainDefaults, bundle.Source)

	outcome, err := s.models.Rain.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("rain inference failed: %w", err)
	}

	result := &RainPrediction{
		Date:     date.AddDays(7),
		WillRain: outcome != 0,
	}

	s.logger.Debug("rain prediction complete",
		"input_date", date.String(),
		"target_date", result.Date.String(),
		"will_rain", result.WillRain,
		"data_source", bundle.Source,
	)

	return result, nil
}

func (s *predictionService) PredictPrecipitation(date types.Date) (*PrecipitationPrediction, error) {
	if s.models.Precipitation == nil {
		return nil, fmt.Errorf("%w: precipitation regressor", ErrModelUnavailable)
	}

	bundle, err := s.weatherService.FetchForDate(date)
	if err != nil {
		return nil, err
	}

	vector := s.assemble(bundle.Hourly, features.PrecipitationFeatureOrder, features.PrecipitationDefaults, bundle.Source)

	amount, err := s.models.Precipitation.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("precipitation inference failed: %w", err)
	}

	// The regressor can extrapolate below zero; clamp.
	if amount < 0 {
		amount = 0
	}

	result := &PrecipitationPrediction{
		StartDate:         date.AddDays(1),
		EndDate:           date.AddDays(3),
		PrecipitationFall: fmt.Sprintf("%.1f", amount),
	}

	s.logger.Debug("precipitation prediction complete",
		"input_date", date.String(),
		"start_date", result.StartDate.String(),
		"end_date", result.EndDate.String(),
		"precipitation_fall", result.PrecipitationFall,
		"data_source", bundle.Source,
	)

	return result, nil
}

// assemble builds the feature vector, flagging how much of it had to be
// defaulted so sparse upstream data is visible in the logs.
func (s *predictionService) assemble(values map[string]float64, order []string, defaults map[string]float64, source string) []float64 {
	if missing := features.CountMissing(values, order); missing > 0 {
		s.logger.Warn("feature vector contains defaulted values",
			"missing", missing,
			"total", len(order),
			"data_source", source,
		)
	}
	return features.Assemble(values, order, defaults)
}
