package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"kaojai/models"
)

type fakeSummarizer struct {
	summary string
	err     error

	gotLanguage string
	calls       int
}

func (f *fakeSummarizer) SummarizeAvailability(ctx context.Context, window models.TimeWindow, days []models.DayAvailability, language string) (string, error) {
	f.calls++
	f.gotLanguage = language
	return f.summary, f.err
}

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }
}

func TestCheckAvailabilityResolved(t *testing.T) {
	booking := &fakeBookingRepo{
		resources: []models.Resource{{ID: "r1", TenantID: "t1", Name: "Court A"}},
		intervals: []models.FreeInterval{
			{TenantID: "t1", ResourceID: "r1", Start: instant("2025-06-16T09:00:00Z"), End: instant("2025-06-16T10:00:00Z")},
		},
	}
	sum := &fakeSummarizer{summary: "มีคอร์ตว่างวันจันทร์ค่ะ"}
	svc := &DefaultAvailabilityService{
		BookingRepo: booking,
		TenantRepo:  &fakeTenantRepo{cfg: &models.TenantConfig{TenantID: "t1", Timezone: "UTC", Language: "Thai"}},
		Summarizer:  sum,
		TenantID:    "t1",
		Now:         fixedNow(2025, time.June, 15),
	}

	result, err := svc.CheckAvailability(context.Background(), models.DateEstimate{Date: 16})
	if err != nil {
		t.Fatalf("CheckAvailability returned error: %v", err)
	}

	if result.Outcome != models.OutcomeResolved {
		t.Fatalf("expected resolved outcome, got %q", result.Outcome)
	}
	if len(result.Days) != 1 || result.Days[0].Date != "2025-06-16" {
		t.Errorf("unexpected days: %+v", result.Days)
	}
	if result.Summary != sum.summary {
		t.Errorf("summary not propagated, got %q", result.Summary)
	}
	if sum.gotLanguage != "Thai" {
		t.Errorf("summarizer should receive the tenant language, got %q", sum.gotLanguage)
	}
}

func TestCheckAvailabilityPastDate(t *testing.T) {
	svc := &DefaultAvailabilityService{
		BookingRepo: &fakeBookingRepo{},
		TenantRepo:  &fakeTenantRepo{},
		TenantID:    "t1",
		Now:         fixedNow(2025, time.June, 15),
	}

	result, err := svc.CheckAvailability(context.Background(), models.DateEstimate{Month: 3})
	if err != nil {
		t.Fatalf("a past date is an outcome, not an error: %v", err)
	}
	if result.Outcome != models.OutcomePastDate {
		t.Errorf("expected past-date outcome, got %q", result.Outcome)
	}
	if len(result.Days) != 0 {
		t.Errorf("past-date result must carry no days, got %+v", result.Days)
	}
}

func TestCheckAvailabilityNoAvailability(t *testing.T) {
	booking := &fakeBookingRepo{
		resources: []models.Resource{{ID: "r1", TenantID: "t1", Name: "Court A"}},
	}
	sum := &fakeSummarizer{}
	svc := &DefaultAvailabilityService{
		BookingRepo: booking,
		TenantRepo:  &fakeTenantRepo{cfg: &models.TenantConfig{TenantID: "t1"}},
		Summarizer:  sum,
		TenantID:    "t1",
		Now:         fixedNow(2025, time.June, 15),
	}

	result, err := svc.CheckAvailability(context.Background(), models.DateEstimate{})
	if err != nil {
		t.Fatalf("CheckAvailability returned error: %v", err)
	}
	if result.Outcome != models.OutcomeNoAvailability {
		t.Fatalf("expected no-availability outcome, got %q", result.Outcome)
	}
	if result.Window.Start == "" || result.Window.End == "" {
		t.Errorf("no-availability result should still carry the window, got %+v", result.Window)
	}
	if sum.calls != 0 {
		t.Errorf("empty selection must not be summarized")
	}
}

func TestCheckAvailabilitySummarizerFailureIsNonFatal(t *testing.T) {
	booking := &fakeBookingRepo{
		resources: []models.Resource{{ID: "r1", TenantID: "t1", Name: "Court A"}},
		intervals: []models.FreeInterval{
			{TenantID: "t1", ResourceID: "r1", Start: instant("2025-06-16T09:00:00Z"), End: instant("2025-06-16T10:00:00Z")},
		},
	}
	svc := &DefaultAvailabilityService{
		BookingRepo: booking,
		TenantRepo:  &fakeTenantRepo{cfg: &models.TenantConfig{TenantID: "t1"}},
		Summarizer:  &fakeSummarizer{err: errors.New("model overloaded")},
		TenantID:    "t1",
		Now:         fixedNow(2025, time.June, 15),
	}

	result, err := svc.CheckAvailability(context.Background(), models.DateEstimate{Date: 16})
	if err != nil {
		t.Fatalf("summarizer failure must not fail the check: %v", err)
	}
	if result.Outcome != models.OutcomeResolved {
		t.Errorf("expected resolved outcome, got %q", result.Outcome)
	}
	if result.Summary != "" {
		t.Errorf("failed summary must leave Summary empty, got %q", result.Summary)
	}
}

func TestCheckAvailabilityBackendError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		BookingRepo: &fakeBookingRepo{err: errors.New("connection refused")},
		TenantRepo:  &fakeTenantRepo{},
		TenantID:    "t1",
		Now:         fixedNow(2025, time.June, 15),
	}

	_, err := svc.CheckAvailability(context.Background(), models.DateEstimate{})
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}
}
