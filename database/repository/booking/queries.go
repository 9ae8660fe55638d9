// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"kaojai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (repo *mongoBookingRepo) ListResources(ctx context.Context, tenantID string) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"tenantId": tenantID}

	cursor, err := repo.resources.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("error decoding resources: %w", err)
	}

	return resources, nil
}

// ListFreeIntervals returns every free interval for the tenant that overlaps
// [t0, t1]. The overlap filter is by instant, not by calendar date, so
// evening slots that straddle midnight in UTC are not truncated.
func (repo *mongoBookingRepo) ListFreeIntervals(ctx context.Context, tenantID string, t0, t1 time.Time) ([]models.FreeInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"tenantId": tenantID,
		"start":    bson.M{"$lt": t1},
		"end":      bson.M{"$gt": t0},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := repo.intervals.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch free intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.FreeInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding free intervals: %w", err)
	}

	return intervals, nil
}
