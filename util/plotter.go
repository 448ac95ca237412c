package util

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"energy-viewer/chart"
	"energy-viewer/models"
)

// PlotSeriesPayload renders a smoothing response into a standalone HTML file.
func PlotSeriesPayload(payload *models.SeriesPayload, options chart.Options, path string) error {
	spec := chart.BuildChartSpec(payload, options)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer f.Close()

	if err := spec.Line().Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Printf("[Plotter] Energy chart generated: %s (%s axis, %d points)",
		path, spec.Axis.Kind, spec.Series[0].Len())
	return nil
}
