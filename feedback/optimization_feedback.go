// Package feedback copies optimization results back into the session form.
package feedback

import (
	"time"

	"github.com/goccy/go-json"

	"energy-viewer/config"
	"energy-viewer/models"
	"energy-viewer/session"
)

// Highlight is a transient visual acknowledgment on one form field.
type Highlight struct {
	Field    string
	Color    string
	Duration time.Duration
}

// TruncateDisplay cuts the textual form of n to at most width characters. It
// does not round: 0.2345 becomes "0.23".
func TruncateDisplay(n json.Number, width int) string {
	s := n.String()
	if width >= 0 && len(s) > width {
		return s[:width]
	}
	return s
}

// ApplyOptimizedParams copies the three optimized smoothing factors into the
// state and returns one highlight per updated field. Season length and
// forecast horizon are left as the user entered them.
func ApplyOptimizedParams(state session.State, resp *models.OptimizeResponse) (session.State, []Highlight) {
	if resp == nil {
		return state, nil
	}

	width := config.OPTIMIZED_PARAM_DISPLAY_WIDTH
	next := state
	var highlights []Highlight

	apply := func(field string, value json.Number, dst *string) {
		if value == "" {
			return
		}
		*dst = TruncateDisplay(value, width)
		highlights = append(highlights, Highlight{
			Field:    field,
			Color:    config.HIGHLIGHT_COLOR,
			Duration: config.HIGHLIGHT_DURATION,
		})
	}
	apply(models.SMOOTHING_FACTOR_FIELD, resp.Params.SmoothingFactor, &next.Params.SmoothingFactor)
	apply(models.TREND_SMOOTHING_FACTOR_FIELD, resp.Params.TrendSmoothingFactor, &next.Params.TrendSmoothingFactor)
	apply(models.SEASON_SMOOTHING_FACTOR_FIELD, resp.Params.SeasonSmoothingFactor, &next.Params.SeasonSmoothingFactor)

	return next, highlights
}
