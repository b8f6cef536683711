package weather

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/afraz-rupak/weather-forecast/internal/config"
	"github.com/afraz-rupak/weather-forecast/internal/features"
	"github.com/afraz-rupak/weather-forecast/internal/providers/openmeteo"
	"github.com/afraz-rupak/weather-forecast/internal/types"
)

const hoursPerDay = 24

// Provider abstracts the Open-Meteo client for testing.
type Provider interface {
	GetDailyHistory(latitude, longitude float64, date string, variables []string) (*openmeteo.APIResponse, error)
	GetHourlyHistory(latitude, longitude float64, date string, variables []string) (*openmeteo.APIResponse, error)
	GetForecast(latitude, longitude float64, forecastDays int, dailyVars, hourlyVars []string) (*openmeteo.APIResponse, error)
}

type Service interface {
	// FetchForDate fetches the daily and hourly variables for the given date,
	// choosing the archive for dates up to today and the forecast otherwise.
	FetchForDate(date types.Date) (*Bundle, error)
}

type weatherService struct {
	provider Provider
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := openmeteo.NewClient(cfg.App.Timezone, logger)
	return NewWeatherServiceWithProvider(client, cfg, logger)
}

func NewWeatherServiceWithProvider(provider Provider, cfg *config.Config, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "weather-service"),
		now:      time.Now,
	}
}

func (s *weatherService) FetchForDate(date types.Date) (*Bundle, error) {
	today := s.today()

	if date.After(today) {
		s.logger.Debug("fetching forecast data", "date", date.String(), "today", today.String())
		return s.fetchForecast(date)
	}

	s.logger.Debug("fetching historical data", "date", date.String(), "today", today.String())
	return s.fetchHistorical(date)
}

// today evaluates the historical/forecast boundary in the location's
// timezone, falling back to server-local time when it cannot be loaded.
func (s *weatherService) today() types.Date {
	location, err := time.LoadLocation(s.cfg.App.Timezone)
	if err != nil {
		s.logger.Warn("failed to load timezone, using server time",
			"timezone", s.cfg.App.Timezone,
			"error", err,
		)
		return types.NewDate(s.now())
	}
	return types.NewDate(s.now().In(location))
}

func (s *weatherService) fetchHistorical(date types.Date) (*Bundle, error) {
	lat, lon := s.cfg.App.Latitude, s.cfg.App.Longitude

	dailyResp, err := s.provider.GetDailyHistory(lat, lon, date.String(), features.RainFeatureOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily history: %w", err)
	}

	hourlyResp, err := s.provider.GetHourlyHistory(lat, lon, date.String(), features.PrecipitationFeatureOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hourly history: %w", err)
	}

	return &Bundle{
		Daily:  flatten(dailyResp.Daily, 0),
		Hourly: flatten(hourlyResp.Hourly, 0),
		Source: SourceHistorical,
	}, nil
}

func (s *weatherService) fetchForecast(date types.Date) (*Bundle, error) {
	resp, err := s.provider.GetForecast(
		s.cfg.App.Latitude,
		s.cfg.App.Longitude,
		s.cfg.App.ForecastDays,
		features.RainFeatureOrder,
		features.PrecipitationFeatureOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	dayIndex, found := findDay(resp.Daily, date.String())
	if !found {
		s.logger.Warn("requested date not in forecast window",
			"date", date.String(),
			"forecast_days", s.cfg.App.ForecastDays,
		)
		return nil, fmt.Errorf("%w: %s", ErrOutsideForecastHorizon, date.String())
	}

	return &Bundle{
		Daily: flatten(resp.Daily, dayIndex),
		// First hour of the matched day.
		Hourly: flatten(resp.Hourly, dayIndex*hoursPerDay),
		Source: SourceForecast,
	}, nil
}

// findDay locates the row of the daily time axis matching the given date.
func findDay(block *openmeteo.VariableBlock, date string) (int, bool) {
	if block == nil {
		return 0, false
	}
	for i, t := range block.Time {
		// The daily axis is plain dates; hourly entries carry a time suffix.
		if t == date {
			return i, true
		}
	}
	return 0, false
}

// flatten extracts the value at index for every variable in the block,
// omitting variables that are absent, null, or shorter than index.
func flatten(block *openmeteo.VariableBlock, index int) map[string]float64 {
	values := make(map[string]float64)
	if block == nil {
		return values
	}
	for name := range block.Values {
		if v, ok := block.At(name, index); ok {
			values[name] = v
		}
	}
	return values
}
