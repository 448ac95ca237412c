package smoothing

import (
	"context"
	"net/url"

	"energy-viewer/api"
	"energy-viewer/config"
	"energy-viewer/models"
)

// SmoothingApiClient embeds the common HTTPClient
type SmoothingApiClient struct {
	*api.HTTPClient
}

// NewSmoothingApiClient creates a new instance of SmoothingApiClient
func NewSmoothingApiClient(httpClient *api.HTTPClient) *SmoothingApiClient {
	return &SmoothingApiClient{
		HTTPClient: httpClient,
	}
}

// GetEnergyData retrieves the raw dataset used to seed a session
func (c *SmoothingApiClient) GetEnergyData(ctx context.Context) (models.Dataset, error) {
	var response models.Dataset
	if err := c.Get(ctx, config.ENERGY_DATA_ENDPOINT, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// HoltWinters posts a smoothing request built by adapter.BuildSmoothingRequest
func (c *SmoothingApiClient) HoltWinters(ctx context.Context, body url.Values) (*models.SeriesPayload, error) {
	var response models.SeriesPayload
	if err := c.PostForm(ctx, config.HOLT_WINTERS_ENDPOINT, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Optimize posts an optimization request built by adapter.BuildOptimizeRequest
func (c *SmoothingApiClient) Optimize(ctx context.Context, body url.Values) (*models.OptimizeResponse, error) {
	var response models.OptimizeResponse
	if err := c.PostForm(ctx, config.OPTIMIZE_ENDPOINT, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
