// Package session holds the per-page state that travels with every request.
package session

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"energy-viewer/models"
)

const SESSION_ID_FIELD = "sessionId"

// State is the single session-scoped state object. Handlers receive it from
// the posted form and hand an updated copy back to the page.
type State struct {
	ID      string
	Params  models.ParameterSet
	Dataset models.Dataset
}

// New starts a session for a freshly loaded dataset with default parameters.
func New(dataset models.Dataset) State {
	return State{
		ID:      uuid.NewString(),
		Params:  models.DefaultParameterSet(),
		Dataset: dataset,
	}
}

// FromForm reads the state back out of a posted page form. A missing or
// malformed session id is replaced with a new one.
func FromForm(form url.Values) State {
	id := strings.TrimSpace(form.Get(SESSION_ID_FIELD))
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	return State{
		ID: id,
		Params: models.ParameterSet{
			SmoothingFactor:       form.Get(models.SMOOTHING_FACTOR_FIELD),
			TrendSmoothingFactor:  form.Get(models.TREND_SMOOTHING_FACTOR_FIELD),
			SeasonSmoothingFactor: form.Get(models.SEASON_SMOOTHING_FACTOR_FIELD),
			SeasonLength:          form.Get(models.SEASON_LENGTH_FIELD),
			ValuesToForecast:      form.Get(models.VALUES_TO_FORECAST_FIELD),
		},
		Dataset: models.ParseDataset(form.Get(models.DATA_FIELD)),
	}
}

// Form returns the state as page form fields.
func (s State) Form() url.Values {
	q := url.Values{}
	q.Set(SESSION_ID_FIELD, s.ID)
	q.Set(models.SMOOTHING_FACTOR_FIELD, s.Params.SmoothingFactor)
	q.Set(models.TREND_SMOOTHING_FACTOR_FIELD, s.Params.TrendSmoothingFactor)
	q.Set(models.SEASON_SMOOTHING_FACTOR_FIELD, s.Params.SeasonSmoothingFactor)
	q.Set(models.SEASON_LENGTH_FIELD, s.Params.SeasonLength)
	q.Set(models.VALUES_TO_FORECAST_FIELD, s.Params.ValuesToForecast)
	q.Set(models.DATA_FIELD, s.Dataset.String())
	return q
}
