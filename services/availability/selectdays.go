// File: services/availability/selectdays.go
package availability

import (
	"sort"
	"time"

	"kaojai/models"
)

// SelectClosestDays narrows the snapshot to the days nearest the user's
// intent. Missing estimate fields default to now's year/month and day 1.
// The returned list is ordered by proximity to the target date, not
// chronologically; downstream presentation re-sorts if it needs to.
func SelectClosestDays(snapshot models.AvailabilitySnapshot, estimate models.DateEstimate, now time.Time, limit int) []models.DayAvailability {
	if limit <= 0 {
		limit = DefaultClosestDays
	}

	year := estimate.Year
	if year == 0 {
		year = now.Year()
	}
	month := time.Month(estimate.Month)
	if month == 0 {
		month = now.Month()
	}
	day := estimate.Date
	if day == 0 {
		day = 1
	}
	target := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	type candidate struct {
		date string
		diff time.Duration
	}
	var candidates []candidate
	for dateStr, byResource := range snapshot {
		if !hasAnySlot(byResource) {
			continue
		}
		parsed, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
		if err != nil {
			continue
		}
		diff := parsed.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		candidates = append(candidates, candidate{date: dateStr, diff: diff})
	}

	// Proximity rank; equal distances break toward the earlier date so the
	// selection is deterministic and idempotent.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].diff != candidates[j].diff {
			return candidates[i].diff < candidates[j].diff
		}
		return candidates[i].date < candidates[j].date
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]models.DayAvailability, 0, len(candidates))
	for _, c := range candidates {
		byResource := snapshot[c.date]

		names := make([]string, 0, len(byResource))
		for name, slots := range byResource {
			if len(slots) > 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		resources := make([]models.ResourceAvailability, 0, len(names))
		for _, name := range names {
			slots := append([]models.ResourceSlot(nil), byResource[name]...)
			sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
			resources = append(resources, models.ResourceAvailability{
				ResourceName:   name,
				AvailableSlots: slots,
			})
		}

		result = append(result, models.DayAvailability{
			Date:               c.date,
			AvailableResources: resources,
		})
	}

	return result
}

func hasAnySlot(byResource map[string][]models.ResourceSlot) bool {
	for _, slots := range byResource {
		if len(slots) > 0 {
			return true
		}
	}
	return false
}
