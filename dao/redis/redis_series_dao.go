package redis

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"energy-viewer/db"
	"energy-viewer/models"
)

const ENERGY_DATA_KEY_V1 = "energy_data_v1"

// HOLT_WINTERS_KEY_FORMAT caches smoothing responses by request digest.
const HOLT_WINTERS_KEY_FORMAT = "holt_winters_v1:%s"

// RedisSeriesDAO caches backend responses in Redis.
type RedisSeriesDAO struct {
	client        db.RedisClient
	energyDataTTL time.Duration
	smoothingTTL  time.Duration
}

// NewRedisSeriesDAO initializes a RedisSeriesDAO with the Redis client.
func NewRedisSeriesDAO(client db.RedisClient, energyDataTTL, smoothingTTL time.Duration) *RedisSeriesDAO {
	return &RedisSeriesDAO{client: client, energyDataTTL: energyDataTTL, smoothingTTL: smoothingTTL}
}

// SetEnergyData caches the raw dataset returned by /energyData.
func (dao *RedisSeriesDAO) SetEnergyData(dataset models.Dataset) error {
	if err := dao.client.Set(ENERGY_DATA_KEY_V1, dataset.String(), dao.energyDataTTL); err != nil {
		return fmt.Errorf("failed to set energy data in redis: %w", err)
	}
	return nil
}

// GetEnergyData returns the cached dataset, or nil on a cache miss.
func (dao *RedisSeriesDAO) GetEnergyData() (models.Dataset, error) {
	str, err := dao.client.Get(ENERGY_DATA_KEY_V1)
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get energy data from redis: %w", err)
	}
	return models.ParseDataset(str), nil
}

// SetSmoothingResult caches a /holtWinters response under the digest of its request body.
// Responses reporting a problem are not cached.
func (dao *RedisSeriesDAO) SetSmoothingResult(body url.Values, payload *models.SeriesPayload) error {
	if payload == nil || payload.Error.IsProblem() {
		return nil
	}
	key := SmoothingKey(body)
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal smoothing result %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data), dao.smoothingTTL); err != nil {
		return fmt.Errorf("failed to set smoothing result in redis: %w", err)
	}
	return nil
}

// GetSmoothingResult returns the cached response for body, or nil on a cache miss.
func (dao *RedisSeriesDAO) GetSmoothingResult(body url.Values) (*models.SeriesPayload, error) {
	key := SmoothingKey(body)
	str, err := dao.client.Get(key)
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get smoothing result from redis: %w", err)
	}
	var payload models.SeriesPayload
	if err := json.Unmarshal([]byte(str), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal smoothing result JSON: %w", err)
	}
	return &payload, nil
}

// PurgeSmoothingResults drops every cached smoothing response, e.g. after the
// underlying dataset changed.
func (dao *RedisSeriesDAO) PurgeSmoothingResults() (int, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(HOLT_WINTERS_KEY_FORMAT, "*"))
	if err != nil {
		return 0, fmt.Errorf("failed to list smoothing keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return 0, fmt.Errorf("failed to delete smoothing key %s: %w", k, err)
		}
	}
	log.Printf("[RedisSeriesDAO] Purged %d cached smoothing results", len(keys))
	return len(keys), nil
}

// SmoothingKey derives the cache key from the encoded request body. Encode
// sorts fields, so equal bodies share a key.
func SmoothingKey(body url.Values) string {
	sum := sha256.Sum256([]byte(body.Encode()))
	return fmt.Sprintf(HOLT_WINTERS_KEY_FORMAT, hex.EncodeToString(sum[:]))
}
