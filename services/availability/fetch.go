// File: services/availability/fetch.go
package availability

import (
	"context"
	"encoding/json"
	"time"

	"kaojai/models"
	"kaojai/utils"

	"go.uber.org/zap"
)

const (
	tenantConfigCachePrefix = "tenant:cfg:"
	tenantConfigCacheTTL    = 10 * time.Minute
	clockLayout             = "15:04"
)

// FetchSlots retrieves every free interval overlapping the window and
// buckets it by local calendar date and resource display name, in the
// tenant's timezone. The fetch is all-or-nothing: no partial snapshot is
// ever returned alongside an error.
func (svc *DefaultAvailabilityService) FetchSlots(ctx context.Context, window models.TimeWindow) (models.AvailabilitySnapshot, error) {
	logger := utils.GetLogger()

	if svc.TenantID == "" {
		return nil, ErrConfigurationMissing
	}

	cfg, err := svc.tenantConfig(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := tenantLocation(cfg)
	if err != nil {
		logger.Error("FetchSlots: unresolvable tenant timezone",
			zap.String("tenantId", svc.TenantID), zap.Error(err))
		return nil, ErrConfigurationMissing
	}

	// Window bounds as absolute instants: local midnight of the first day
	// up to (exclusive) local midnight after the last day. Parsing in the
	// tenant location picks up the UTC offset in force on that date, so
	// DST transitions inside the window stay correct.
	startDay, err := time.ParseInLocation(dateLayout, window.Start, loc)
	if err != nil {
		return nil, ErrConfigurationMissing
	}
	endDay, err := time.ParseInLocation(dateLayout, window.End, loc)
	if err != nil {
		return nil, ErrConfigurationMissing
	}
	t0 := startDay
	t1 := endDay.AddDate(0, 0, 1)

	resources, err := svc.BookingRepo.ListResources(ctx, svc.TenantID)
	if err != nil {
		logger.Error("FetchSlots: listing resources failed",
			zap.String("tenantId", svc.TenantID), zap.Error(err))
		return nil, ErrBackendUnavailable
	}
	nameByID := make(map[string]string, len(resources))
	for _, r := range resources {
		nameByID[r.ID] = r.Name
	}

	intervals, err := svc.BookingRepo.ListFreeIntervals(ctx, svc.TenantID, t0, t1)
	if err != nil {
		logger.Error("FetchSlots: listing free intervals failed",
			zap.String("tenantId", svc.TenantID), zap.Error(err))
		return nil, ErrBackendUnavailable
	}

	snapshot := make(models.AvailabilitySnapshot)
	for _, iv := range intervals {
		name, ok := nameByID[iv.ResourceID]
		if !ok {
			// Resource metadata can lag behind interval rows. Drop the row,
			// keep the fetch.
			logger.Warn("FetchSlots: dropping interval for unknown resource",
				zap.String("tenantId", svc.TenantID),
				zap.String("resourceId", iv.ResourceID),
				zap.Time("start", iv.Start))
			continue
		}

		// The interval's calendar day is decided by its local start instant,
		// so an interval never lands in two date buckets. An interval that
		// crosses local midnight keeps its wall-clock end ("23:00"-"00:30");
		// the day it belongs to is still the start's day.
		localStart := iv.Start.In(loc)
		localEnd := iv.End.In(loc)
		day := localStart.Format(dateLayout)
		if day < window.Start || day > window.End {
			// The overlap query also matches intervals that merely reach into
			// the window from the day before its first local midnight. Their
			// start day is outside the window, so they must not surface.
			continue
		}
		snapshot.Add(day, name, models.ResourceSlot{
			Start: localStart.Format(clockLayout),
			End:   localEnd.Format(clockLayout),
		})
	}

	return snapshot, nil
}

// tenantConfig loads the tenant configuration, with a short-lived redis
// cache in front of the store.
func (svc *DefaultAvailabilityService) tenantConfig(ctx context.Context) (*models.TenantConfig, error) {
	logger := utils.GetLogger()
	key := tenantConfigCachePrefix + svc.TenantID

	if svc.Cache != nil {
		if data, err := svc.Cache.Get(ctx, key).Result(); err == nil {
			var cfg models.TenantConfig
			if err := json.Unmarshal([]byte(data), &cfg); err == nil {
				return &cfg, nil
			}
		}
	}

	cfg, err := svc.TenantRepo.GetConfig(ctx, svc.TenantID)
	if err != nil {
		logger.Error("tenantConfig: fetch failed",
			zap.String("tenantId", svc.TenantID), zap.Error(err))
		return nil, ErrBackendUnavailable
	}
	if cfg == nil {
		// No stored config: defaults apply (UTC, Thai).
		cfg = &models.TenantConfig{TenantID: svc.TenantID}
	}

	if svc.Cache != nil {
		if b, err := json.Marshal(cfg); err == nil {
			if err := svc.Cache.Set(ctx, key, b, tenantConfigCacheTTL).Err(); err != nil {
				logger.Warn("tenantConfig: cache write failed", zap.Error(err))
			}
		}
	}

	return cfg, nil
}

// tenantLocation resolves the tenant's IANA timezone, defaulting to UTC
// when unset.
func tenantLocation(cfg *models.TenantConfig) (*time.Location, error) {
	if cfg == nil || cfg.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(cfg.Timezone)
}
