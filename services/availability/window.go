// File: services/availability/window.go
package availability

import (
	"time"

	"kaojai/models"
)

const dateLayout = "2006-01-02"

// ResolveWindow turns a partial date estimate plus "now" into the inclusive
// calendar-date range to query. It is a pure function of its inputs.
//
// Priority: a specific day yields a 9-day window centered on it (4 days of
// buffer each side); a bare month yields the whole month; nothing yields a
// rolling 7-day lookahead from today. A window that starts in the past is
// clamped to today; a day or month that has fully elapsed yields ErrPastDate.
func ResolveWindow(estimate models.DateEstimate, now time.Time) (models.TimeWindow, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	year := estimate.Year
	if year == 0 {
		year = today.Year()
	}
	month := time.Month(estimate.Month)
	if month == 0 {
		month = today.Month()
	}

	switch {
	case estimate.HasDate():
		// Day-of-month overflow (e.g. date=31 in a 30-day month) rolls into
		// the next month through time.Date normalization. Accepted behavior.
		target := time.Date(year, month, estimate.Date, 0, 0, 0, 0, time.UTC)
		if target.Before(today) {
			return models.TimeWindow{}, ErrPastDate
		}
		start := target.AddDate(0, 0, -4)
		end := target.AddDate(0, 0, 4)
		if start.Before(today) {
			start = today
		}
		return newWindow(start, end), nil

	case estimate.HasMonth():
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		if last.Before(today) {
			return models.TimeWindow{}, ErrPastDate
		}
		if first.Before(today) {
			first = today
		}
		return newWindow(first, last), nil

	default:
		// 7-day lookahead including today.
		return newWindow(today, today.AddDate(0, 0, 6)), nil
	}
}

func newWindow(start, end time.Time) models.TimeWindow {
	return models.TimeWindow{
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	}
}
