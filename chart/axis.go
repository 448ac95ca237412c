package chart

import (
	"gonum.org/v1/gonum/floats"

	"energy-viewer/config"
	"energy-viewer/models"
)

// AxisKind tags which x axis variant a chart uses.
type AxisKind int

const (
	AxisCategorical AxisKind = iota
	AxisTime
)

func (k AxisKind) String() string {
	if k == AxisTime {
		return "time"
	}
	return "category"
}

func (k AxisKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Axis is the x axis resolved once per response. Categories is only set for
// AxisCategorical; Min, Max and Interval only for AxisTime (epoch seconds).
// ByLabel marks categories taken from the series rows, in which case every
// point is placed under its own label rather than by position.
type Axis struct {
	Kind       AxisKind `json:"kind"`
	Categories []string `json:"categories,omitempty"`
	ByLabel    bool     `json:"byLabel,omitempty"`
	Min        float64  `json:"min,omitempty"`
	Max        float64  `json:"max,omitempty"`
	Interval   float64  `json:"interval,omitempty"`
}

// ResolveAxis decides the x axis for a payload. Explicit payload labels win,
// then row labels, then numeric epoch rows. A payload without any x data gets
// a categorical axis without categories.
func ResolveAxis(payload *models.SeriesPayload, mode AxisMode) Axis {
	if mode == AxisForceTime || (mode == AxisAuto && len(payload.X) == 0) {
		if epochs, ok := numeric(epochSource(payload)); ok {
			return Axis{
				Kind:     AxisTime,
				Min:      floats.Min(epochs),
				Max:      floats.Max(epochs),
				Interval: config.TIME_AXIS_TICK_SECONDS,
			}
		}
	}

	if len(payload.X) > 0 {
		return Axis{Kind: AxisCategorical, Categories: labels(payload.X)}
	}
	if cats := rowLabels(payload); len(cats) > 0 {
		return Axis{Kind: AxisCategorical, Categories: cats, ByLabel: true}
	}
	return Axis{Kind: AxisCategorical}
}

// epochSource collects the x values bounding a time axis: the rows of both
// series, or the payload's own x list for column-oriented payloads.
func epochSource(payload *models.SeriesPayload) []models.XValue {
	xs := append(payload.Original.XValues(), payload.Smoothed.XValues()...)
	if len(xs) == 0 {
		return payload.X
	}
	return xs
}

// rowLabels merges the row labels of both series into one ordered list. A
// label only the smoothed series has is inserted after the last label the two
// series share, so offset series and forecast tails keep their order.
func rowLabels(payload *models.SeriesPayload) []string {
	var out []string
	seen := make(map[string]bool)
	for _, x := range payload.Original.XValues() {
		if l := x.String(); !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}

	pos := 0
	for _, x := range payload.Smoothed.XValues() {
		l := x.String()
		if seen[l] {
			pos = indexOf(out, l) + 1
			continue
		}
		seen[l] = true
		out = append(out, "")
		copy(out[pos+1:], out[pos:])
		out[pos] = l
		pos++
	}
	return out
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}

func numeric(xs []models.XValue) ([]float64, bool) {
	if len(xs) == 0 {
		return nil, false
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		if !x.Numeric {
			return nil, false
		}
		out[i] = x.Epoch
	}
	return out, true
}

func labels(xs []models.XValue) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}
