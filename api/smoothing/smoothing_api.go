package smoothing

import (
	"context"
	"net/url"

	"energy-viewer/models"
)

// SmoothingAPI defines the interface for interacting with the smoothing backend
type SmoothingAPI interface {
	GetEnergyData(ctx context.Context) (models.Dataset, error)
	HoltWinters(ctx context.Context, body url.Values) (*models.SeriesPayload, error)
	Optimize(ctx context.Context, body url.Values) (*models.OptimizeResponse, error)
}
