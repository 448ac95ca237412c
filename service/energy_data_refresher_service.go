package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"energy-viewer/api/smoothing"
	"energy-viewer/config"
	"energy-viewer/dao/redis"
)

// EnergyDataRefresherService periodically refetches /energyData into the cache.
type EnergyDataRefresherService struct {
	seriesDao    *redis.RedisSeriesDAO
	smoothingAPI smoothing.SmoothingAPI
}

// NewEnergyDataRefresherService constructs a new refresher with dependencies.
func NewEnergyDataRefresherService(
	seriesDao *redis.RedisSeriesDAO,
	smoothingAPI smoothing.SmoothingAPI,
) *EnergyDataRefresherService {
	return &EnergyDataRefresherService{
		seriesDao:    seriesDao,
		smoothingAPI: smoothingAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (er *EnergyDataRefresherService) StartPeriodicJob(interval time.Duration) {
	go er.startPeriodicJob(interval)
}

func (er *EnergyDataRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[EnergyDataRefresherService] Running periodic energy data refresher job.")
		ctx, cancel := context.WithTimeout(context.Background(), config.SMOOTHING_HTTP_TIMEOUT)
		if err := er.RefreshEnergyData(ctx); err != nil {
			log.Printf("[EnergyDataRefresherService] RefreshEnergyData returned error: %v", err)
		} else {
			log.Println("[EnergyDataRefresherService] RefreshEnergyData completed successfully.")
		}
		cancel()
	}
}

// RefreshEnergyData replaces the cached dataset and drops the smoothing
// results computed from the previous one.
func (er *EnergyDataRefresherService) RefreshEnergyData(ctx context.Context) error {
	dataset, err := er.smoothingAPI.GetEnergyData(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch energy data: %w", err)
	}

	if err := er.seriesDao.SetEnergyData(dataset); err != nil {
		return err
	}
	log.Printf("[EnergyDataRefresherService] Cached %d bytes of energy data", len(dataset))

	n, err := er.seriesDao.PurgeSmoothingResults()
	if err != nil {
		return err
	}
	log.Printf("[EnergyDataRefresherService] Purged %d cached smoothing results", n)
	return nil
}
