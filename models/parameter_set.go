package models

import "energy-viewer/config"

// Form field names shared by the page, the request adapter and the backend.
const (
	SMOOTHING_FACTOR_FIELD        = "smoothingFactor"
	TREND_SMOOTHING_FACTOR_FIELD  = "trendSmoothingFactor"
	SEASON_SMOOTHING_FACTOR_FIELD = "seasonSmoothingFactor"
	SEASON_LENGTH_FIELD           = "seasonLength"
	VALUES_TO_FORECAST_FIELD      = "valuesToForecast"
	DATA_FIELD                    = "data"
)

// ParameterSet holds the user-editable smoothing parameters as raw form text.
// Values are never validated here; the backend is the authority on ranges.
type ParameterSet struct {
	SmoothingFactor       string // [0,1]
	TrendSmoothingFactor  string // [0,1]
	SeasonSmoothingFactor string // [0,1]
	SeasonLength          string // positive integer
	ValuesToForecast      string // non-negative integer
}

// DefaultParameterSet returns the values the form starts with after the initial load.
func DefaultParameterSet() ParameterSet {
	return ParameterSet{
		SmoothingFactor:       config.DEFAULT_SMOOTHING_FACTOR,
		TrendSmoothingFactor:  config.DEFAULT_TREND_SMOOTHING_FACTOR,
		SeasonSmoothingFactor: config.DEFAULT_SEASON_SMOOTHING_FACTOR,
		SeasonLength:          config.DEFAULT_SEASON_LENGTH,
		ValuesToForecast:      config.DEFAULT_VALUES_TO_FORECAST,
	}
}
