// File: database/repository/tenant/crud.go
package tenantRepo

import (
	"context"
	"fmt"
	"time"

	"kaojai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (repo *mongoTenantRepo) GetConfig(ctx context.Context, tenantID string) (*models.TenantConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cfg models.TenantConfig
	err := repo.configs.FindOne(ctx, bson.M{"tenantId": tenantID}).Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant config: %w", err)
	}

	return &cfg, nil
}

func (repo *mongoTenantRepo) UpsertConfig(ctx context.Context, cfg models.TenantConfig) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"tenantId": cfg.TenantID}
	update := bson.M{"$set": cfg}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.configs.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert tenant config: %w", err)
	}
	return nil
}

func (repo *mongoTenantRepo) GetChannel(ctx context.Context, tenantID, channel string) (*models.TenantChannel, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ch models.TenantChannel
	err := repo.channels.FindOne(ctx, bson.M{"tenantId": tenantID, "channel": channel}).Decode(&ch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Absent registration decodes to an empty config, not an error.
			return &models.TenantChannel{
				TenantID: tenantID,
				Channel:  channel,
				Config:   models.ChannelConfig{UserIDs: []string{}, GroupIDs: []string{}},
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant channel: %w", err)
	}

	return &ch, nil
}

func (repo *mongoTenantRepo) UpsertChannel(ctx context.Context, ch models.TenantChannel) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if ch.Status == "" {
		ch.Status = "ACTIVE"
	}

	filter := bson.M{"tenantId": ch.TenantID, "channel": ch.Channel}
	update := bson.M{"$set": ch}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.channels.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert tenant channel: %w", err)
	}
	return nil
}
