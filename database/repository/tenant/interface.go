// File: database/repository/tenant/interface.go
package tenantRepo

import (
	"context"

	"kaojai/database"
	"kaojai/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LineNotifyChannel is the checkslip notification channel name.
const LineNotifyChannel = "line_notify"

// TenantRepository exposes tenant configuration and notification-channel
// registrations.
type TenantRepository interface {
	GetConfig(ctx context.Context, tenantID string) (*models.TenantConfig, error)
	UpsertConfig(ctx context.Context, cfg models.TenantConfig) error
	GetChannel(ctx context.Context, tenantID, channel string) (*models.TenantChannel, error)
	UpsertChannel(ctx context.Context, ch models.TenantChannel) error
}

type mongoTenantRepo struct {
	configs  *mongo.Collection
	channels *mongo.Collection
}

// NewMongoTenantRepo constructs a new MongoDB TenantRepository.
func NewMongoTenantRepo() TenantRepository {
	db := database.MongoClient.Database("kaojai")
	return &mongoTenantRepo{
		configs:  db.Collection("tenant_configs"),
		channels: db.Collection("tenant_channels"),
	}
}
