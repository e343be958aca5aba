package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	datesCacheKey      = "agrodoc:dates"
	listingCachePrefix = "agrodoc:files:"

	// DefaultCacheTTL keeps listings fresh enough for the dashboard while
	// absorbing repeated polling.
	DefaultCacheTTL = 60 * time.Second
)

// CacheManager caches dates and file listings in Redis. A nil client turns
// every lookup into a miss, so Redis stays optional.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redisClient *redis.Client) *CacheManager {
	return &CacheManager{redis: redisClient, ttl: DefaultCacheTTL}
}

// GetDates retrieves the cached available-dates list.
func (cm *CacheManager) GetDates(ctx context.Context) ([]string, bool) {
	if cm.redis == nil {
		return nil, false
	}
	raw, err := cm.redis.Get(ctx, datesCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		zap.L().Warn("Failed to unmarshal cached dates", zap.Error(err))
		return nil, false
	}
	return dates, true
}

// SetDatesAsync caches the available-dates list without blocking the request.
func (cm *CacheManager) SetDatesAsync(dates []string) {
	cm.setAsync(datesCacheKey, dates)
}

// GetListing retrieves a cached per-date file listing for a directory.
func (cm *CacheManager) GetListing(ctx context.Context, dir string) (map[string][]string, bool) {
	if cm.redis == nil {
		return nil, false
	}
	raw, err := cm.redis.Get(ctx, listingCachePrefix+dir).Result()
	if err != nil {
		return nil, false
	}
	var listing map[string][]string
	if err := json.Unmarshal([]byte(raw), &listing); err != nil {
		zap.L().Warn("Failed to unmarshal cached listing", zap.Error(err))
		return nil, false
	}
	return listing, true
}

// SetListingAsync caches a file listing without blocking the request.
func (cm *CacheManager) SetListingAsync(dir string, listing map[string][]string) {
	cm.setAsync(listingCachePrefix+dir, listing)
}

func (cm *CacheManager) setAsync(key string, value interface{}) {
	if cm.redis == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		b, err := json.Marshal(value)
		if err != nil {
			zap.L().Warn("Failed to marshal value for cache", zap.String("key", key), zap.Error(err))
			return
		}
		if err := cm.redis.Set(ctx, key, b, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
		}
	}()
}
