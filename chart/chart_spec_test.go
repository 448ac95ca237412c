package chart

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-viewer/models"
)

func decodePayload(t *testing.T, content string) *models.SeriesPayload {
	t.Helper()
	var payload models.SeriesPayload
	require.NoError(t, json.Unmarshal([]byte(content), &payload))
	return &payload
}

func TestResolveAxis_ExplicitLabels(t *testing.T) {
	payload := decodePayload(t, `{"original": [1, 2], "smoothed": [1, 2], "x": ["Mon", "Tue"]}`)

	axis := ResolveAxis(payload, AxisAuto)

	assert.Equal(t, AxisCategorical, axis.Kind)
	assert.Equal(t, []string{"Mon", "Tue"}, axis.Categories)
}

func TestResolveAxis_RowLabels(t *testing.T) {
	payload := decodePayload(t, `{"original": [["01.01", 1], ["02.01", 2]], "smoothed": [["01.01", 1], ["02.01", 2], ["03.01", 3]]}`)

	axis := ResolveAxis(payload, AxisAuto)

	assert.Equal(t, AxisCategorical, axis.Kind)
	assert.Equal(t, []string{"01.01", "02.01", "03.01"}, axis.Categories)
}

func TestResolveAxis_RowLabelsMergeOffsetSeries(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []string
	}{
		{
			name:     "smoothed runs past original",
			payload:  `{"original": [["01.01", 1], ["02.01", 2], ["03.01", 3]], "smoothed": [["02.01", 1.5], ["03.01", 2.5], ["04.01", 3.5]]}`,
			expected: []string{"01.01", "02.01", "03.01", "04.01"},
		},
		{
			name:     "smoothed starts earlier",
			payload:  `{"original": [["02.01", 2], ["03.01", 3]], "smoothed": [["01.01", 1], ["02.01", 2]]}`,
			expected: []string{"01.01", "02.01", "03.01"},
		},
		{
			name:     "null row",
			payload:  `{"original": [["01.01", 1], null, ["03.01", 3]], "smoothed": [["01.01", 1], ["02.01", 2], ["03.01", 3]]}`,
			expected: []string{"01.01", "02.01", "03.01"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			axis := ResolveAxis(decodePayload(t, test.payload), AxisAuto)

			assert.Equal(t, AxisCategorical, axis.Kind)
			assert.True(t, axis.ByLabel)
			assert.Equal(t, test.expected, axis.Categories)
		})
	}
}

func TestResolveAxis_EpochRows(t *testing.T) {
	payload := decodePayload(t, `{"original": [[1357084800, 1], [1356998400, 2]], "smoothed": [[1356998400, 1], [1357171200, 2]]}`)

	axis := ResolveAxis(payload, AxisAuto)

	assert.Equal(t, AxisTime, axis.Kind)
	assert.Equal(t, 1356998400.0, axis.Min)
	assert.Equal(t, 1357171200.0, axis.Max)
	assert.Equal(t, 86400.0, axis.Interval)
}

func TestResolveAxis_MissingXDegrades(t *testing.T) {
	payload := decodePayload(t, `{"original": [1, 2], "smoothed": [1, 2]}`)

	for _, mode := range []AxisMode{AxisAuto, AxisForceCategorical, AxisForceTime} {
		axis := ResolveAxis(payload, mode)
		assert.Equal(t, AxisCategorical, axis.Kind)
		assert.Empty(t, axis.Categories)
	}
}

func TestResolveAxis_ForcedCategoricalUsesEpochLabels(t *testing.T) {
	payload := decodePayload(t, `{"original": [[100, 1]], "smoothed": [[100, 1]]}`)

	axis := ResolveAxis(payload, AxisForceCategorical)

	assert.Equal(t, AxisCategorical, axis.Kind)
	assert.Equal(t, []string{"100"}, axis.Categories)
}

func TestBuildChartSpec_SeriesOrderAndLegend(t *testing.T) {
	payload := decodePayload(t, `{"original": [1, 2, 3], "smoothed": [1.5, 2.5, 3.5], "x": ["a", "b", "c"]}`)

	spec := BuildChartSpec(payload, KilowattHourOptions())

	assert.Equal(t, "Original", spec.Series[0].Name)
	assert.Equal(t, "Smoothed", spec.Series[1].Name)
	assert.Equal(t, 3, spec.Series[0].Len())
	assert.Equal(t, 2.5, *spec.Series[1].Values[1])
	assert.Equal(t, LegendSpec{Orient: "vertical", Align: "right", Right: "10", Top: "100", BorderWidth: 0}, spec.Legend)
	assert.Equal(t, 0.0, spec.ReferenceY)
	assert.Equal(t, "kwH", spec.Tooltip.Unit)
}

func TestBuildChartSpec_ForecastExtension(t *testing.T) {
	original := `[[1356998400, 1], [1357084800, 2], [1357171200, 3]]`

	noForecast := decodePayload(t, `{"original": `+original+`, "smoothed": `+original+`}`)
	spec := BuildChartSpec(noForecast, WattHourOptions())
	assert.Equal(t, spec.Series[0].Len(), spec.Series[1].Len())

	withForecast := decodePayload(t, `{"original": `+original+`, "smoothed": [[1356998400, 1], [1357084800, 2], [1357171200, 3], [1357257600, 4], [1357344000, 5]]}`)
	spec = BuildChartSpec(withForecast, WattHourOptions())
	assert.Equal(t, spec.Series[0].Len()+2, spec.Series[1].Len())
	assert.Equal(t, 1357344000.0, spec.Axis.Max)
}

func TestBuildChartSpec_EmptyPayload(t *testing.T) {
	for _, payload := range []*models.SeriesPayload{nil, {}} {
		spec := BuildChartSpec(payload, KilowattHourOptions())

		assert.Equal(t, 0, spec.Series[0].Len())
		assert.Equal(t, 0, spec.Series[1].Len())
		assert.Equal(t, AxisCategorical, spec.Axis.Kind)
	}
}

func TestChartSpec_TooltipText(t *testing.T) {
	payload := decodePayload(t, `{"original": [["03.01", 1.23456], ["04.01", null]], "smoothed": []}`)

	spec := BuildChartSpec(payload, KilowattHourOptions())

	text, ok := spec.TooltipText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "Original: 03.01: 1.23456kwH", text)

	_, ok = spec.TooltipText(0, 1)
	assert.False(t, ok)
}

func values(s SeriesSpec) []interface{} {
	out := make([]interface{}, len(s.Values))
	for i, v := range s.Values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func TestBuildChartSpec_OffsetRowLabels(t *testing.T) {
	payload := decodePayload(t, `{"original": [["01.01", 1], ["02.01", 2], ["03.01", 3]], "smoothed": [["02.01", 1.5], ["03.01", 2.5], ["04.01", 3.5]]}`)

	spec := BuildChartSpec(payload, KilowattHourOptions())

	assert.Equal(t, []interface{}{1.0, 2.0, 3.0, nil}, values(spec.Series[0]))
	assert.Equal(t, []interface{}{nil, 1.5, 2.5, 3.5}, values(spec.Series[1]))

	text, ok := spec.TooltipText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "Original: 01.01: 1kwH", text)
	text, ok = spec.TooltipText(1, 3)
	require.True(t, ok)
	assert.Equal(t, "Smoothed: 04.01: 3.5kwH", text)
	_, ok = spec.TooltipText(1, 0)
	assert.False(t, ok)
}

func TestBuildChartSpec_NullRowKeepsLabels(t *testing.T) {
	payload := decodePayload(t, `{"original": [["01.01", 1], null, ["03.01", 3]], "smoothed": [["01.01", 1], ["02.01", 2], ["03.01", 3]]}`)

	spec := BuildChartSpec(payload, KilowattHourOptions())

	assert.Equal(t, []interface{}{1.0, nil, 3.0}, values(spec.Series[0]))
	text, ok := spec.TooltipText(0, 2)
	require.True(t, ok)
	assert.Equal(t, "Original: 03.01: 3kwH", text)
}

func TestChartSpec_TooltipTextTimeAxis(t *testing.T) {
	payload := decodePayload(t, `{"original": [[1357171200, 1.23456]], "smoothed": [[1357171200, 1.2]]}`)

	spec := BuildChartSpec(payload, WattHourOptions())

	text, ok := spec.TooltipText(0, 0)
	require.True(t, ok)
	assert.Equal(t, "Original: 03.01: 1.234wH", text)
}

func TestChartSpec_JSON(t *testing.T) {
	payload := decodePayload(t, `{"original": [[1357171200, 1]], "smoothed": [[1357171200, 1]]}`)

	out, err := json.Marshal(BuildChartSpec(payload, WattHourOptions()))

	require.NoError(t, err)
	assert.Contains(t, string(out), `"kind":"time"`)
}
