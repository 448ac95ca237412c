package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Line converts c into a go-echarts line chart bound to the fixed
// container element.
func (c ChartSpec) Line() *charts.Line {
	line := charts.NewLine()

	xAxis := opts.XAxis{Type: c.Axis.Kind.String()}
	if c.Axis.Kind == AxisTime {
		// ECharts "time" axes expect milliseconds; epoch seconds need a value axis.
		xAxis = opts.XAxis{
			Type:        "value",
			Min:         c.Axis.Min,
			Max:         c.Axis.Max,
			MinInterval: c.Axis.Interval,
			MaxInterval: c.Axis.Interval,
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts(dayMonthJS),
			},
		}
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			ChartID:   CHART_CONTAINER_ID,
			Width:     c.Width,
			Height:    c.Height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.Title,
			Left:  "center",
		}),
		charts.WithXAxisOpts(xAxis),
		charts.WithYAxisOpts(opts.YAxis{
			Name: c.YAxisName,
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(c.TooltipJS()),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: c.Legend.Orient,
			Right:  c.Legend.Right,
			Top:    c.Legend.Top,
		}),
	)

	if c.Axis.Kind == AxisCategorical && len(c.Axis.Categories) > 0 {
		line.SetXAxis(c.Axis.Categories)
	}

	line.AddSeries(c.Series[0].Name, c.lineData(0),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "zero",
			YAxis: c.ReferenceY,
		}),
	)
	line.AddSeries(c.Series[1].Name, c.lineData(1))

	return line
}

func (c ChartSpec) lineData(s int) []opts.LineData {
	series := c.Series[s]
	data := make([]opts.LineData, 0, series.Len())
	for i, v := range series.Values {
		var value interface{} = "-"
		if v != nil {
			value = *v
		}
		if c.Axis.Kind == AxisTime {
			value = []interface{}{series.X[i], value}
		}
		data = append(data, opts.LineData{Value: value})
	}
	return data
}
