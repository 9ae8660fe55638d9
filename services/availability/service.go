// File: services/availability/service.go
package availability

import (
	"context"
	"errors"

	"kaojai/models"
	"kaojai/utils"

	"go.uber.org/zap"
)

// CheckAvailability runs the whole resolution flow: window, fetch, closest-day
// selection, optional summary. The three-way outcome on the result is the
// contract; an error return means the fetch itself failed.
func (svc *DefaultAvailabilityService) CheckAvailability(ctx context.Context, estimate models.DateEstimate) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()
	now := svc.now()

	window, err := ResolveWindow(estimate, now)
	if err != nil {
		if errors.Is(err, ErrPastDate) {
			logger.Info("CheckAvailability: past date requested",
				zap.Int("year", estimate.Year),
				zap.Int("month", estimate.Month),
				zap.Int("date", estimate.Date))
			return &models.AvailabilityResult{Outcome: models.OutcomePastDate}, nil
		}
		return nil, err
	}

	snapshot, err := svc.FetchSlots(ctx, window)
	if err != nil {
		return nil, err
	}

	days := SelectClosestDays(snapshot, estimate, now, DefaultClosestDays)
	if len(days) == 0 {
		return &models.AvailabilityResult{
			Outcome: models.OutcomeNoAvailability,
			Window:  window,
		}, nil
	}

	result := &models.AvailabilityResult{
		Outcome: models.OutcomeResolved,
		Window:  window,
		Days:    days,
	}

	if svc.Summarizer != nil {
		cfg, cfgErr := svc.tenantConfig(ctx)
		language := "Thai"
		if cfgErr == nil && cfg.Language != "" {
			language = cfg.Language
		}
		summary, sumErr := svc.Summarizer.SummarizeAvailability(ctx, window, days, language)
		if sumErr != nil {
			// The structured days stand on their own; a missing summary is
			// a degraded reply, not a failure.
			logger.Warn("CheckAvailability: summarizer failed", zap.Error(sumErr))
		} else {
			result.Summary = summary
		}
	}

	return result, nil
}
