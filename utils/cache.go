// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"kaojai/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (tenant timezone, config lookups).
	CacheClient *redis.Client
	// EventCacheClient is the dedicated client for webhook event deduplication.
	EventCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitEventCache initializes the Redis client for webhook event deduplication.
func InitEventCache() {
	EventCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := EventCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Event Cache): %v", err)
	}
}

// GetEventCacheClient returns the Redis client for webhook event deduplication.
func GetEventCacheClient() *redis.Client {
	if EventCacheClient == nil {
		InitEventCache()
	}
	return EventCacheClient
}
