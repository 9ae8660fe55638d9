// File: services/availability/interface.go
package availability

import (
	"context"
	"time"

	bookingRepo "kaojai/database/repository/booking"
	tenantRepo "kaojai/database/repository/tenant"
	"kaojai/models"

	"github.com/go-redis/redis/v8"
)

// DefaultClosestDays is how many days the selector returns when the caller
// does not say otherwise.
const DefaultClosestDays = 3

// AvailabilityService resolves a partial date estimate into presentable
// availability for the configured tenant.
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, estimate models.DateEstimate) (*models.AvailabilityResult, error)
}

// Summarizer produces a short natural-language summary of the selected days.
// Failures here must never fail the availability result.
type Summarizer interface {
	SummarizeAvailability(ctx context.Context, window models.TimeWindow, days []models.DayAvailability, language string) (string, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	BookingRepo bookingRepo.BookingRepository
	TenantRepo  tenantRepo.TenantRepository
	Summarizer  Summarizer
	Cache       *redis.Client
	TenantID    string

	// Now is injected for deterministic window resolution in tests.
	// Nil means time.Now.
	Now func() time.Time
}

func (svc *DefaultAvailabilityService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
