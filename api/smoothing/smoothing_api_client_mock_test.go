package smoothing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-viewer/adapter"
	"energy-viewer/models"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMock_HoltWinters_EchoesDataset(t *testing.T) {
	client := NewSmoothingApiClientMock("", "")
	dataset := models.ParseDataset(`[[100, 1], [200, 2], [300, 3]]`)

	got, err := client.HoltWinters(context.Background(), adapter.BuildSmoothingRequest(models.DefaultParameterSet(), dataset))

	require.NoError(t, err)
	require.Len(t, got.Original, 3)
	for i, want := range []float64{100, 200, 300} {
		assert.Equal(t, want, got.Original[i].X.Epoch)
	}
	assert.Len(t, got.Smoothed, 3)
}

func TestMock_HoltWinters_ForecastHorizon(t *testing.T) {
	client := NewSmoothingApiClientMock("", "")
	params := models.DefaultParameterSet()
	params.ValuesToForecast = "4"
	dataset := models.ParseDataset(`[[100, 1], [200, 2], [300, 3]]`)

	got, err := client.HoltWinters(context.Background(), adapter.BuildSmoothingRequest(params, dataset))

	require.NoError(t, err)
	require.Len(t, got.Smoothed, len(got.Original)+4)
	assert.Equal(t, 700.0, got.Smoothed[6].X.Epoch)
	assert.Equal(t, 3.0, *got.Smoothed[6].Y)
}

func TestMock_GetEnergyDataAndOptimize(t *testing.T) {
	energy := writeFixture(t, "energy.json", `[[100, 1], [200, 2]]`)
	optimize := writeFixture(t, "optimize.json", `{"params": {"smoothingFactor": 0.2345, "trendSmoothingFactor": 0.1, "seasonSmoothingFactor": 0.9}}`)
	client := NewSmoothingApiClientMock(energy, optimize)

	dataset, err := client.GetEnergyData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[[100, 1], [200, 2]]`, dataset.String())

	resp, err := client.Optimize(context.Background(), adapter.BuildOptimizeRequest("6", "1", dataset))
	require.NoError(t, err)
	assert.Equal(t, "0.2345", resp.Params.SmoothingFactor.String())
	assert.Len(t, resp.Original, 2)
	assert.Len(t, resp.Smoothed, 3)
}

func TestMock_GetEnergyData_MissingFixture(t *testing.T) {
	client := NewSmoothingApiClientMock(filepath.Join(t.TempDir(), "missing.json"), "")

	_, err := client.GetEnergyData(context.Background())

	assert.Error(t, err)
}

func TestMock_HoltWinters_ForecastLabels(t *testing.T) {
	tests := []struct {
		name     string
		dataset  string
		expected []string
	}{
		{"day.month labels", `[["30.12", 1], ["31.12", 2]]`, []string{"30.12", "31.12", "01.01", "02.01"}},
		{"other labels", `[["Mon", 1], ["Tue", 2]]`, []string{"Mon", "Tue", "Tue+1", "Tue+2"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := NewSmoothingApiClientMock("", "")
			params := models.DefaultParameterSet()
			params.ValuesToForecast = "2"

			got, err := client.HoltWinters(context.Background(), adapter.BuildSmoothingRequest(params, models.ParseDataset(test.dataset)))

			require.NoError(t, err)
			labels := []string{}
			for _, x := range got.Smoothed.XValues() {
				labels = append(labels, x.Label)
			}
			assert.Equal(t, test.expected, labels)
		})
	}
}
