// Package features turns the flat variable mappings fetched from the weather
// provider into the fixed-order numeric vectors the models were trained on.
package features

// RainFeatureOrder lists the daily variables consumed by the rain classifier,
// in training order. The order is part of the model contract and must not
// change without retraining.
var RainFeatureOrder = []string{
	"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
	"relative_humidity_2m_max", "relative_humidity_2m_min",
	"pressure_msl_mean", "wind_speed_10m_max", "wind_speed_10m_mean",
	"wind_direction_10m_dominant", "precipitation_sum", "rain_sum",
	"shortwave_radiation_sum", "daylight_duration",
}

// RainDefaults substitutes for daily variables the provider did not report.
var RainDefaults = map[string]float64{
	"temperature_2m_max":          20.0,
	"temperature_2m_min":          15.0,
	"temperature_2m_mean":         17.5,
	"relative_humidity_2m_max":    80.0,
	"relative_humidity_2m_min":    60.0,
	"pressure_msl_mean":           1013.25,
	"wind_speed_10m_max":          10.0,
	"wind_speed_10m_mean":         5.0,
	"wind_direction_10m_dominant": 180.0,
	"precipitation_sum":           0.0,
	"rain_sum":                    0.0,
	"shortwave_radiation_sum":     10.0,
	"daylight_duration":           12.0,
}

// PrecipitationFeatureOrder lists the hourly variables consumed by the
// precipitation regressor, in training order.
var PrecipitationFeatureOrder = []string{
	"temperature_2m", "relative_humidity_2m", "dew_point_2m",
	"precipitation", "rain", "pressure_msl", "cloud_cover",
	"wind_speed_10m", "wind_direction_10m", "shortwave_radiation",
	"surface_pressure", "cloud_cover_low", "cloud_cover_mid", "cloud_cover_high",
}

// PrecipitationDefaults substitutes for hourly variables the provider did not
// report.
var PrecipitationDefaults = map[string]float64{
	"temperature_2m":       18.0,
	"relative_humidity_2m": 70.0,
	"dew_point_2m":         12.0,
	"precipitation":        0.0,
	"rain":                 0.0,
	"pressure_msl":         1013.25,
	"cloud_cover":          50.0,
	"wind_speed_10m":       8.0,
	"wind_direction_10m":   180.0,
	"shortwave_radiation":  200.0,
	"surface_pressure":     1015.0,
	"cloud_cover_low":      30.0,
	"cloud_cover_mid":      20.0,
	"cloud_cover_high":     10.0,
}

// Assemble maps the fetched values onto the given feature order, substituting
// the default table (or zero) for absent names. It is total: however sparse
// values is, the result always has len(order) entries in order's order.
func Assemble(values map[string]float64, order []string, defaults map[string]float64) []float64 {
	vector := make([]float64, 0, len(order))
	for _, name := range order {
		if v, ok := values[name]; ok {
			vector = append(vector, v)
		} else {
			vector = append(vector, defaults[name])
		}
	}
	return vector
}

// CountMissing reports how many names in order are absent from values, i.e.
// how many entries of the assembled vector came from the default table.
func CountMissing(values map[string]float64, order []string) int {
	missing := 0
	for _, name := range order {
		if _, ok := values[name]; !ok {
			missing++
		}
	}
	return missing
}
