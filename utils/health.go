package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest probe result for each external dependency:
// the mongo store, the tenant-config cache and the webhook dedup store.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	Cache      bool      `json:"cache"`
	EventDedup bool      `json:"eventDedup"`
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the stores every minute and updates the
// in-memory snapshot served by the health endpoint.
func StartHealthMonitor(cache, eventDedup *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			mu.Lock()
			currentHealth = HealthStatus{
				Mongo:      mongoClient.Ping(ctx, nil) == nil,
				Cache:      cache.Ping(ctx).Err() == nil,
				EventDedup: eventDedup.Ping(ctx).Err() == nil,
				CheckedAt:  time.Now(),
			}
			mu.Unlock()
		}
	}()
}
