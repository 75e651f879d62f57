package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data
	CacheKeyPrefix = "cache:"
	// DefaultCacheTTL suits identity data that rarely changes
	DefaultCacheTTL = 1 * time.Hour
	// MinCacheTTL is the lower clamp
	MinCacheTTL = 5 * time.Minute
	// MaxCacheTTL is the upper clamp
	MaxCacheTTL = 6 * time.Hour
)

// CacheService provides Redis-backed caching for hot lookups.
type CacheService struct{}

// Get retrieves a value from cache.
func (c *CacheService) Get(key string, dest interface{}) (bool, error) {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	val, err := database.RedisClient.Get(ctx, cacheKey).Result()
	if err != nil {
		return false, nil // Cache miss, not an error
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

// Set stores a value in cache with default TTL.
func (c *CacheService) Set(key string, value interface{}) error {
	return c.SetWithTTL(key, value, DefaultCacheTTL)
}

// SetWithTTL stores a value in cache with custom TTL (clamped).
func (c *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) error {
	if ttl < MinCacheTTL {
		ttl = MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}

	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return database.RedisClient.Set(ctx, cacheKey, jsonData, ttl).Err()
}

// Delete removes a value from cache.
func (c *CacheService) Delete(key string) error {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key
	return database.RedisClient.Del(ctx, cacheKey).Err()
}

// GetString retrieves a string value from cache.
func (c *CacheService) GetString(key string) (string, bool, error) {
	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key

	val, err := database.RedisClient.Get(ctx, cacheKey).Result()
	if err != nil {
		return "", false, nil // Cache miss
	}

	return val, true, nil
}

// SetString stores a string value in cache.
func (c *CacheService) SetString(key string, value string) error {
	return c.SetStringWithTTL(key, value, DefaultCacheTTL)
}

// SetStringWithTTL stores a string value in cache with custom TTL (clamped).
func (c *CacheService) SetStringWithTTL(key string, value string, ttl time.Duration) error {
	if ttl < MinCacheTTL {
		ttl = MinCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}

	ctx := context.Background()
	cacheKey := CacheKeyPrefix + key
	return database.RedisClient.Set(ctx, cacheKey, value, ttl).Err()
}

// CacheKey generates a cache key for a specific resource.
func CacheKey(resource string, identifier string) string {
	return fmt.Sprintf("%s:%s", resource, identifier)
}

// Global cache service instance
var Cache = &CacheService{}
