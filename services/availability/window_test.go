package availability

import (
	"errors"
	"testing"
	"time"

	"kaojai/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindowSpecificDay(t *testing.T) {
	now := date(2025, time.June, 1)

	window, err := ResolveWindow(models.DateEstimate{Year: 2025, Month: 6, Date: 15}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-11" || window.End != "2025-06-19" {
		t.Errorf("expected 9-day window centered on the 15th, got [%s, %s]", window.Start, window.End)
	}
}

func TestResolveWindowSpecificDayDefaultsMonthYear(t *testing.T) {
	now := date(2025, time.June, 1)

	window, err := ResolveWindow(models.DateEstimate{Date: 15}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-11" || window.End != "2025-06-19" {
		t.Errorf("missing month/year should borrow now's, got [%s, %s]", window.Start, window.End)
	}
}

func TestResolveWindowSpecificDayClampsStart(t *testing.T) {
	now := date(2025, time.June, 1)

	window, err := ResolveWindow(models.DateEstimate{Date: 3}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-01" {
		t.Errorf("window start must never precede now, got %s", window.Start)
	}
	if window.End != "2025-06-07" {
		t.Errorf("window end should stay at date+4, got %s", window.End)
	}
}

func TestResolveWindowPastDay(t *testing.T) {
	now := date(2025, time.June, 15)

	_, err := ResolveWindow(models.DateEstimate{Year: 2025, Month: 6, Date: 10}, now)
	if !errors.Is(err, ErrPastDate) {
		t.Errorf("a day earlier than today must yield ErrPastDate, got %v", err)
	}
}

func TestResolveWindowMonthOnly(t *testing.T) {
	now := date(2025, time.January, 1)

	window, err := ResolveWindow(models.DateEstimate{Month: 6}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-01" || window.End != "2025-06-30" {
		t.Errorf("expected full June, got [%s, %s]", window.Start, window.End)
	}
}

func TestResolveWindowCurrentMonthClamps(t *testing.T) {
	now := date(2025, time.June, 10)

	window, err := ResolveWindow(models.DateEstimate{Month: 6}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-10" || window.End != "2025-06-30" {
		t.Errorf("current month should clamp start to today, got [%s, %s]", window.Start, window.End)
	}
}

func TestResolveWindowPastMonth(t *testing.T) {
	now := date(2025, time.January, 1)

	_, err := ResolveWindow(models.DateEstimate{Year: 2024, Month: 6}, now)
	if !errors.Is(err, ErrPastDate) {
		t.Errorf("a fully elapsed month must yield ErrPastDate, got %v", err)
	}
}

func TestResolveWindowEmptyEstimate(t *testing.T) {
	now := date(2025, time.June, 10)

	window, err := ResolveWindow(models.DateEstimate{}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-10" || window.End != "2025-06-16" {
		t.Errorf("expected 7-day lookahead including today, got [%s, %s]", window.Start, window.End)
	}
}

func TestResolveWindowDayOverflowRollsForward(t *testing.T) {
	now := date(2025, time.June, 1)

	// June has 30 days; date=31 normalizes to July 1.
	window, err := ResolveWindow(models.DateEstimate{Year: 2025, Month: 6, Date: 31}, now)
	if err != nil {
		t.Fatalf("ResolveWindow returned error: %v", err)
	}
	if window.Start != "2025-06-27" || window.End != "2025-07-05" {
		t.Errorf("overflowing day should roll into the next month, got [%s, %s]", window.Start, window.End)
	}
}
