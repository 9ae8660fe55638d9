// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"kaojai/database"
	"kaojai/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the read-only view of the scheduling backend.
type BookingRepository interface {
	ListResources(ctx context.Context, tenantID string) ([]models.Resource, error)
	ListFreeIntervals(ctx context.Context, tenantID string, t0, t1 time.Time) ([]models.FreeInterval, error)
}

type mongoBookingRepo struct {
	resources *mongo.Collection
	intervals *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("kaojai")
	return &mongoBookingRepo{
		resources: db.Collection("resources"),
		intervals: db.Collection("free_intervals"),
	}
}
