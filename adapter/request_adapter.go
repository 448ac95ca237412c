// Package adapter turns form state into the wire bodies the smoothing backend
// expects. Nothing here validates or performs I/O.
package adapter

import (
	"net/url"

	"energy-viewer/models"
)

// BuildSmoothingRequest builds the /holtWinters body: one field per parameter
// plus the dataset as JSON text.
func BuildSmoothingRequest(params models.ParameterSet, dataset models.Dataset) url.Values {
	q := url.Values{}
	q.Set(models.SMOOTHING_FACTOR_FIELD, params.SmoothingFactor)
	q.Set(models.TREND_SMOOTHING_FACTOR_FIELD, params.TrendSmoothingFactor)
	q.Set(models.SEASON_SMOOTHING_FACTOR_FIELD, params.SeasonSmoothingFactor)
	q.Set(models.SEASON_LENGTH_FIELD, params.SeasonLength)
	q.Set(models.VALUES_TO_FORECAST_FIELD, params.ValuesToForecast)
	q.Set(models.DATA_FIELD, dataset.String())
	return q
}

// BuildOptimizeRequest builds the /optimize body. The smoothing factors are
// left out; the backend searches for them.
func BuildOptimizeRequest(seasonLength, valuesToForecast string, dataset models.Dataset) url.Values {
	q := url.Values{}
	q.Set(models.SEASON_LENGTH_FIELD, seasonLength)
	q.Set(models.VALUES_TO_FORECAST_FIELD, valuesToForecast)
	q.Set(models.DATA_FIELD, dataset.String())
	return q
}
