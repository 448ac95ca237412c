package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// ServerError is the "error" field of a smoothing response. The backend sends
// either a problem description (string) or its SMAPE error measure (number).
type ServerError struct {
	Message string
	Measure *float64
}

// IsProblem reports whether the server signalled a failed computation.
func (e ServerError) IsProblem() bool {
	return e.Message != ""
}

func (e *ServerError) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*e = ServerError{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*e = ServerError{Message: s}
		return nil
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			// Anything else is kept as text so it still reaches the status region.
			*e = ServerError{Message: string(b)}
			return nil
		}
		*e = ServerError{Measure: &f}
		return nil
	}
}

func (e ServerError) MarshalJSON() ([]byte, error) {
	if e.Measure != nil {
		return []byte(strconv.FormatFloat(*e.Measure, 'f', -1, 64)), nil
	}
	if e.Message == "" {
		return []byte("null"), nil
	}
	return json.Marshal(e.Message)
}

// SeriesPayload is the response of /holtWinters.
type SeriesPayload struct {
	Original Series      `json:"original"`
	Smoothed Series      `json:"smoothed"`
	X        []XValue    `json:"x,omitempty"`
	Error    ServerError `json:"error"`
}

// OptimalParams are the smoothing factors found by /optimize. They are kept as
// json.Number so the server's textual precision survives decoding.
type OptimalParams struct {
	SmoothingFactor       json.Number `json:"smoothingFactor"`
	TrendSmoothingFactor  json.Number `json:"trendSmoothingFactor"`
	SeasonSmoothingFactor json.Number `json:"seasonSmoothingFactor"`
}

// OptimizeResponse is the response of /optimize.
type OptimizeResponse struct {
	Params OptimalParams `json:"params"`
	SeriesPayload
}
