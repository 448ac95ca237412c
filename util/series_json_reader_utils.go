package util

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"energy-viewer/models"
)

// ReadDatasetFromJSON loads a raw energy dataset from JSON on disk.
func ReadDatasetFromJSON(filePath string) (models.Dataset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("file %q does not hold valid JSON", filePath)
	}
	return models.ParseDataset(string(data)), nil
}

// ReadSeriesPayloadFromJSON loads a /holtWinters response from JSON on disk.
func ReadSeriesPayloadFromJSON(filePath string) (*models.SeriesPayload, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SeriesPayload
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SeriesPayload: %w", err)
	}
	return &resp, nil
}

// ReadOptimizeResponseFromJSON loads an /optimize response from JSON on disk.
func ReadOptimizeResponseFromJSON(filePath string) (*models.OptimizeResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.OptimizeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OptimizeResponse: %w", err)
	}
	return &resp, nil
}

// PrintSeriesPayloadPartially prints key fields of a SeriesPayload.
func PrintSeriesPayloadPartially(resp *models.SeriesPayload) {
	fmt.Printf("Original points: %d\n", len(resp.Original))
	fmt.Printf("Smoothed points: %d\n", len(resp.Smoothed))
	if len(resp.X) > 0 {
		fmt.Printf("Axis labels: %d\n", len(resp.X))
	}
	if resp.Error.IsProblem() {
		fmt.Printf("Error: %s\n", resp.Error.Message)
	} else if resp.Error.Measure != nil {
		fmt.Printf("SMAPE: %v\n", *resp.Error.Measure)
	}
}
