package chart

import (
	"strconv"

	"energy-viewer/models"
)

const (
	ORIGINAL_SERIES_NAME = "Original"
	SMOOTHED_SERIES_NAME = "Smoothed"
	CHART_CONTAINER_ID   = "container"
)

// SeriesSpec is one line of the chart. On a categorical axis Values lines up
// with the axis categories by index, with nil where the series has no point
// for a category; on a time axis X holds the epoch of each value.
type SeriesSpec struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
	X      []float64  `json:"x,omitempty"`
}

func (s SeriesSpec) Len() int {
	return len(s.Values)
}

// LegendSpec pins the legend vertically at the top right without a border.
type LegendSpec struct {
	Orient      string `json:"orient"`
	Align       string `json:"align"`
	Right       string `json:"right"`
	Top         string `json:"top"`
	BorderWidth int    `json:"borderWidth"`
}

// ChartSpec is the renderer-independent description of the energy chart.
type ChartSpec struct {
	Title      string           `json:"title"`
	YAxisName  string           `json:"yAxisName"`
	ReferenceY float64          `json:"referenceY"`
	Axis       Axis             `json:"axis"`
	Series     [2]SeriesSpec    `json:"series"`
	Legend     LegendSpec       `json:"legend"`
	Tooltip    TooltipFormatter `json:"tooltip"`
	Width      string           `json:"width"`
	Height     string           `json:"height"`
}

// BuildChartSpec reshapes a payload into a ChartSpec. It never fails: missing
// or malformed pieces simply leave the matching chart feature out.
func BuildChartSpec(payload *models.SeriesPayload, o Options) ChartSpec {
	if payload == nil {
		payload = &models.SeriesPayload{}
	}
	axis := ResolveAxis(payload, o.AxisMode)

	return ChartSpec{
		Title:      o.Title,
		YAxisName:  o.YAxisName,
		ReferenceY: 0,
		Axis:       axis,
		Series: [2]SeriesSpec{
			buildSeries(ORIGINAL_SERIES_NAME, payload.Original, axis),
			buildSeries(SMOOTHED_SERIES_NAME, payload.Smoothed, axis),
		},
		Legend: LegendSpec{
			Orient:      "vertical",
			Align:       "right",
			Right:       "10",
			Top:         "100",
			BorderWidth: 0,
		},
		Tooltip: TooltipFormatter{
			Unit:      o.Unit,
			Rounding:  o.Rounding,
			Precision: o.Precision,
		},
		Width:  o.Width,
		Height: o.Height,
	}
}

func buildSeries(name string, series models.Series, axis Axis) SeriesSpec {
	spec := SeriesSpec{Name: name, Values: make([]*float64, 0, len(series))}
	if axis.Kind == AxisTime {
		spec.X = make([]float64, 0, len(series))
	}
	if axis.Kind == AxisCategorical && axis.ByLabel {
		return buildLabelledSeries(spec, series, axis)
	}
	for _, p := range series {
		if axis.Kind == AxisTime {
			// points without an epoch cannot be placed on a time axis
			if p.X == nil || !p.X.Numeric {
				continue
			}
			spec.X = append(spec.X, p.X.Epoch)
		}
		var y *float64
		if p.Y != nil {
			v := *p.Y
			y = &v
		}
		spec.Values = append(spec.Values, y)
	}
	return spec
}

// buildLabelledSeries places each row under the category of its own label.
// Rows without a label cannot be placed; a repeated label keeps its first row.
func buildLabelledSeries(spec SeriesSpec, series models.Series, axis Axis) SeriesSpec {
	index := make(map[string]int, len(axis.Categories))
	for i, c := range axis.Categories {
		index[c] = i
	}

	spec.Values = make([]*float64, len(axis.Categories))
	placed := make([]bool, len(axis.Categories))
	for _, p := range series {
		if p.X == nil {
			continue
		}
		i, ok := index[p.X.String()]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		if p.Y != nil {
			v := *p.Y
			spec.Values[i] = &v
		}
	}
	return spec
}

// XLabel returns the x text shown for point i of series s.
func (c ChartSpec) XLabel(s, i int) string {
	if c.Axis.Kind == AxisTime {
		return DayMonth(c.Series[s].X[i])
	}
	if i < len(c.Axis.Categories) {
		return c.Axis.Categories[i]
	}
	return strconv.Itoa(i)
}

// TooltipText renders the tooltip for point i of series s. Null points have none.
func (c ChartSpec) TooltipText(s, i int) (string, bool) {
	v := c.Series[s].Values[i]
	if v == nil {
		return "", false
	}
	return c.Tooltip.Format(c.Series[s].Name, c.XLabel(s, i), *v), true
}
