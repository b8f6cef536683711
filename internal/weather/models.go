package weather

import "errors"

// Data sources a Bundle can be built from.
const (
	SourceHistorical = "historical"
	SourceForecast   = "forecast"
)

// ErrOutsideForecastHorizon is returned when a future date is beyond the
// provider's rolling forecast window.
var ErrOutsideForecastHorizon = errors.New("date is outside the forecast horizon")

// Bundle is the normalized result of one fetch: flat name-to-value mappings
// for the daily and hourly variables of a single day, plus the source they
// came from. Variables the provider did not report are simply absent.
type Bundle struct {
	Daily  map[string]float64
	Hourly map[string]float64
	Source string
}
