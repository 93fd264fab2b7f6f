package services

import (
	"context"
	"time"
)

// CacheService is the slice of the Redis client the repositories use for
// read-through caching. A nil CacheService disables caching entirely.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Cache expirations for the hot lookup paths.
const (
	UserCacheTTL    = 15 * time.Minute
	VehicleCacheTTL = 5 * time.Minute
)
