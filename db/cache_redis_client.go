package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// CacheRedisClient struct holds the Redis client and context
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient wraps a go-redis client. The connection is checked
// lazily through Ping.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a value, expiring after ttl (0 keeps it forever)
func (r *CacheRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CacheRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Keys lists keys matching pattern using SCAN so large keyspaces do not block Redis
func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(r.ctx, 0, pattern, 100).Iterator()
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *CacheRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	if err == nil {
		log.Println("[CacheRedisClient] Connected to Redis")
	}
	return err
}
