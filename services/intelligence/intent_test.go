package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kaojai/models"
)

type cannedGenerator struct {
	output string
	err    error

	gotPrompt string
}

func (g *cannedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.gotPrompt = prompt
	return g.output, g.err
}

func TestExtractIntent(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantIntent string
		wantDetail models.DateEstimate
	}{
		{
			name:       "plain json",
			output:     `{"intent": "availability", "date": 17, "month": 9, "year": 2025}`,
			wantIntent: models.IntentAvailability,
			wantDetail: models.DateEstimate{Year: 2025, Month: 9, Date: 17},
		},
		{
			name:       "null date fields",
			output:     `{"intent": "availability", "date": null, "month": 9, "year": null}`,
			wantIntent: models.IntentAvailability,
			wantDetail: models.DateEstimate{Month: 9},
		},
		{
			name:       "code-fenced json",
			output:     "```json\n{\"intent\": \"operating_hour\", \"date\": null, \"month\": null, \"year\": null}\n```",
			wantIntent: models.IntentOperatingHour,
		},
		{
			name:       "unknown intent degrades to other",
			output:     `{"intent": "weather", "date": null, "month": null, "year": null}`,
			wantIntent: models.IntentOther,
		},
		{
			name:       "prose instead of json degrades to other",
			output:     "Sure! The user seems to be asking about availability.",
			wantIntent: models.IntentOther,
		},
		{
			name:       "out-of-range month is discarded",
			output:     `{"intent": "availability", "date": 17, "month": 13, "year": 2025}`,
			wantIntent: models.IntentAvailability,
			wantDetail: models.DateEstimate{Year: 2025, Date: 17},
		},
		{
			name:       "out-of-range date is discarded",
			output:     `{"intent": "availability", "date": 32, "month": 9, "year": 2025}`,
			wantIntent: models.IntentAvailability,
			wantDetail: models.DateEstimate{Year: 2025, Month: 9},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &cannedGenerator{output: tc.output}
			svc := &DefaultAIService{Gen: gen}

			result, err := svc.ExtractIntent(context.Background(), "คอร์ตว่างวันไหนบ้าง")
			if err != nil {
				t.Fatalf("ExtractIntent returned error: %v", err)
			}
			if result.Intent != tc.wantIntent {
				t.Errorf("intent = %q, want %q", result.Intent, tc.wantIntent)
			}
			if result.Details != tc.wantDetail {
				t.Errorf("details = %+v, want %+v", result.Details, tc.wantDetail)
			}
			if !strings.Contains(gen.gotPrompt, "คอร์ตว่างวันไหนบ้าง") {
				t.Errorf("prompt should embed the user message")
			}
		})
	}
}

func TestExtractIntentGeneratorFailure(t *testing.T) {
	svc := &DefaultAIService{Gen: &cannedGenerator{err: errors.New("quota exceeded")}}

	_, err := svc.ExtractIntent(context.Background(), "hello")
	if err == nil {
		t.Fatal("generator failure must surface as an error")
	}
}

func TestSummarizeAvailabilityPromptContents(t *testing.T) {
	gen := &cannedGenerator{output: "ว่างวันเสาร์ค่ะ"}
	svc := &DefaultAIService{Gen: gen}

	days := []models.DayAvailability{
		{
			Date: "2025-09-20",
			AvailableResources: []models.ResourceAvailability{
				{ResourceName: "Court A", AvailableSlots: []models.ResourceSlot{{Start: "10:00", End: "11:00"}}},
			},
		},
	}

	summary, err := svc.SummarizeAvailability(context.Background(),
		models.TimeWindow{Start: "2025-09-16", End: "2025-09-24"}, days, "Thai")
	if err != nil {
		t.Fatalf("SummarizeAvailability returned error: %v", err)
	}
	if summary != "ว่างวันเสาร์ค่ะ" {
		t.Errorf("summary = %q", summary)
	}
	for _, want := range []string{"Thai", "2025-09-20", "Court A", "10:00"} {
		if !strings.Contains(gen.gotPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
