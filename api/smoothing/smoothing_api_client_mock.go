package smoothing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"energy-viewer/config"
	"energy-viewer/models"
	"energy-viewer/util"
)

// SmoothingApiClientMock serves fixtures from disk instead of calling the
// backend. Smoothing echoes the dataset and pads it with valuesToForecast
// copies of the last value so that forecast lengths stay observable offline.
type SmoothingApiClientMock struct {
	energyDataPath string
	optimizePath   string
}

// NewSmoothingApiClientMock creates a mock reading the given fixture files
func NewSmoothingApiClientMock(energyDataPath, optimizePath string) *SmoothingApiClientMock {
	return &SmoothingApiClientMock{
		energyDataPath: energyDataPath,
		optimizePath:   optimizePath,
	}
}

// NewDefaultSmoothingApiClientMock reads the fixtures under resources/
func NewDefaultSmoothingApiClientMock() *SmoothingApiClientMock {
	return NewSmoothingApiClientMock(
		config.GetResourcePath(config.ENERGY_DATA_RESOURCE),
		config.GetResourcePath(config.OPTIMIZE_RESPONSE_RESOURCE),
	)
}

func (c *SmoothingApiClientMock) GetEnergyData(ctx context.Context) (models.Dataset, error) {
	dataset, err := util.ReadDatasetFromJSON(c.energyDataPath)
	if err != nil {
		log.Printf("[SmoothingApiClientMock] Could not read energy data from json: %v", err)
		return nil, err
	}
	return dataset, nil
}

func (c *SmoothingApiClientMock) HoltWinters(ctx context.Context, body url.Values) (*models.SeriesPayload, error) {
	series, err := parseSeries(body.Get(models.DATA_FIELD))
	if err != nil {
		return nil, err
	}
	horizon, _ := strconv.Atoi(body.Get(models.VALUES_TO_FORECAST_FIELD))
	return &models.SeriesPayload{
		Original: series,
		Smoothed: extend(series, horizon),
	}, nil
}

func (c *SmoothingApiClientMock) Optimize(ctx context.Context, body url.Values) (*models.OptimizeResponse, error) {
	response, err := util.ReadOptimizeResponseFromJSON(c.optimizePath)
	if err != nil {
		log.Printf("[SmoothingApiClientMock] Could not read optimize response from json: %v", err)
		return nil, err
	}
	payload, err := c.HoltWinters(ctx, body)
	if err != nil {
		return nil, err
	}
	response.Original = payload.Original
	response.Smoothed = payload.Smoothed
	return response, nil
}

func parseSeries(data string) (models.Series, error) {
	var series models.Series
	if data == "" {
		return series, nil
	}
	if err := json.Unmarshal([]byte(data), &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	return series, nil
}

// extend appends horizon points repeating the last value. Numeric x values are
// continued at the spacing of the last two points, or one day; labels get the
// following dd.mm days, or a "+n" suffix when they are not dates.
func extend(series models.Series, horizon int) models.Series {
	out := make(models.Series, len(series), len(series)+max(horizon, 0))
	copy(out, series)
	if horizon <= 0 || len(series) == 0 {
		return out
	}

	last := series[len(series)-1]
	step := float64(config.TIME_AXIS_TICK_SECONDS)
	if n := len(series); n > 1 && last.X != nil && last.X.Numeric && series[n-2].X != nil && series[n-2].X.Numeric {
		if d := last.X.Epoch - series[n-2].X.Epoch; d > 0 {
			step = d
		}
	}

	for i := 1; i <= horizon; i++ {
		p := models.Point{Y: last.Y}
		switch {
		case last.X == nil:
		case last.X.Numeric:
			p.X = &models.XValue{Epoch: last.X.Epoch + float64(i)*step, Numeric: true}
		default:
			p.X = &models.XValue{Label: nextLabel(last.X.Label, i)}
		}
		out = append(out, p)
	}
	return out
}

func nextLabel(label string, i int) string {
	if day, err := time.Parse("02.01", label); err == nil {
		return day.AddDate(0, 0, i).Format("02.01")
	}
	return fmt.Sprintf("%s+%d", label, i)
}
