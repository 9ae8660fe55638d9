package line

import (
	"strings"
	"testing"
	"unicode/utf8"

	"kaojai/models"
)

func TestClampText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text untouched", in: "ว่าง 10:00", max: 60, want: "ว่าง 10:00"},
		{name: "exact length untouched", in: "abcde", max: 5, want: "abcde"},
		{name: "ascii clamped", in: "abcdef", max: 5, want: "abcd…"},
		{name: "thai clamped rune-safe", in: "คอร์ตแบดมินตัน", max: 6, want: "คอร์ต…"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := clampText(tc.in, tc.max)
			if got != tc.want {
				t.Errorf("clampText(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
			if utf8.RuneCountInString(got) > tc.max {
				t.Errorf("clamped text exceeds %d runes", tc.max)
			}
		})
	}
}

func TestFormatDateTitle(t *testing.T) {
	// 2025-09-17 is a Wednesday.
	if got := formatDateTitle("2025-09-17"); got != "วันพุธที่ 17 ก.ย." {
		t.Errorf("formatDateTitle = %q", got)
	}
	// Unparseable input falls back to the raw string.
	if got := formatDateTitle("someday"); got != "someday" {
		t.Errorf("fallback = %q", got)
	}
}

func TestFormatDateForAction(t *testing.T) {
	if got := formatDateForAction("2025-09-17"); got != "17 กันยายน 2568" {
		t.Errorf("formatDateForAction = %q", got)
	}
}

func TestFormatAvailabilityDetailsCaps(t *testing.T) {
	resources := []models.ResourceAvailability{
		{ResourceName: "A", AvailableSlots: []models.ResourceSlot{
			{Start: "10:00", End: "11:00"},
			{Start: "11:00", End: "12:00"},
			{Start: "12:00", End: "13:00"},
			{Start: "13:00", End: "14:00"},
		}},
		{ResourceName: "B", AvailableSlots: []models.ResourceSlot{{Start: "10:00", End: "11:00"}}},
		{ResourceName: "C", AvailableSlots: []models.ResourceSlot{{Start: "10:00", End: "11:00"}}},
		{ResourceName: "D", AvailableSlots: []models.ResourceSlot{{Start: "10:00", End: "11:00"}}},
	}

	text := formatAvailabilityDetails(resources)

	if strings.Contains(text, "13:00-14:00") {
		t.Errorf("fourth slot should be cut: %q", text)
	}
	if strings.Contains(text, "D:") {
		t.Errorf("fourth resource should be cut: %q", text)
	}
	if !strings.Contains(text, "…") {
		t.Errorf("truncation must be marked: %q", text)
	}
	if utf8.RuneCountInString(text) > carouselTextMaxLength {
		t.Errorf("card text exceeds %d runes: %q", carouselTextMaxLength, text)
	}
}

func TestBuildAvailabilityMessagesOutcomes(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		msgs := BuildAvailabilityMessages(&models.AvailabilityResult{Outcome: models.OutcomePastDate})
		if len(msgs) != 1 {
			t.Fatalf("expected a single text reply, got %d", len(msgs))
		}
		if _, ok := msgs[0].(models.LineTextMessage); !ok {
			t.Fatalf("expected text message, got %T", msgs[0])
		}
	})

	t.Run("no availability", func(t *testing.T) {
		msgs := BuildAvailabilityMessages(&models.AvailabilityResult{
			Outcome: models.OutcomeNoAvailability,
			Window:  models.TimeWindow{Start: "2025-09-16", End: "2025-09-24"},
		})
		if len(msgs) != 1 {
			t.Fatalf("expected a single text reply, got %d", len(msgs))
		}
	})

	t.Run("resolved with summary", func(t *testing.T) {
		result := &models.AvailabilityResult{
			Outcome: models.OutcomeResolved,
			Summary: "ว่างวันเสาร์ค่ะ",
			Days: []models.DayAvailability{
				{Date: "2025-09-20", AvailableResources: []models.ResourceAvailability{
					{ResourceName: "Court A", AvailableSlots: []models.ResourceSlot{{Start: "10:00", End: "11:00"}}},
				}},
				{Date: "2025-09-25", AvailableResources: []models.ResourceAvailability{
					{ResourceName: "Court B", AvailableSlots: []models.ResourceSlot{{Start: "14:00", End: "15:00"}}},
				}},
			},
		}

		msgs := BuildAvailabilityMessages(result)
		if len(msgs) != 2 {
			t.Fatalf("expected summary + carousel, got %d messages", len(msgs))
		}
		text, ok := msgs[0].(models.LineTextMessage)
		if !ok || text.Text != "ว่างวันเสาร์ค่ะ" {
			t.Errorf("first message should be the summary, got %+v", msgs[0])
		}
		tpl, ok := msgs[1].(models.LineTemplateMessage)
		if !ok {
			t.Fatalf("second message should be a template, got %T", msgs[1])
		}
		if len(tpl.Template.Columns) != 2 {
			t.Fatalf("expected 2 columns, got %d", len(tpl.Template.Columns))
		}
		// Days stay in the order the selector produced.
		if tpl.Template.Columns[0].Title != "วันเสาร์ที่ 20 ก.ย." {
			t.Errorf("column title = %q", tpl.Template.Columns[0].Title)
		}
		action := tpl.Template.Columns[0].Actions[0]
		if action.Text != "สนใจวันที่ 20 กันยายน 2568" {
			t.Errorf("action text = %q", action.Text)
		}
	})

	t.Run("card cap", func(t *testing.T) {
		days := make([]models.DayAvailability, 7)
		for i := range days {
			days[i] = models.DayAvailability{Date: "2025-09-20"}
		}
		msgs := BuildAvailabilityMessages(&models.AvailabilityResult{Outcome: models.OutcomeResolved, Days: days})
		tpl := msgs[len(msgs)-1].(models.LineTemplateMessage)
		if len(tpl.Template.Columns) != maxDayCards {
			t.Errorf("expected %d columns, got %d", maxDayCards, len(tpl.Template.Columns))
		}
	})
}
