package db

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
