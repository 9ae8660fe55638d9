// File: services/intelligence/summary.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"kaojai/models"
)

const summaryPrompt = `You are a helpful assistant that formats booking availability information.
Respond with a very short, clear, friendly message, with emoji, in %s, that
summarizes the availability details. Start by telling about the date range the
user requested, in %s. If there is no availability, encourage the user to try
another date.

Requested date range: %s to %s
Availability (closest to the requested date):
%s`

const jokePrompt = `You are a polite Thai comedian. Tell one short, family-friendly,
one-line joke in Thai. Respond with the joke only.`

// SummarizeAvailability turns the selected days into a short prose summary
// in the tenant's language.
func (s *DefaultAIService) SummarizeAvailability(ctx context.Context, window models.TimeWindow, days []models.DayAvailability, language string) (string, error) {
	if language == "" {
		language = "Thai"
	}

	payload, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return "", fmt.Errorf("summarize availability: %w", err)
	}

	prompt := fmt.Sprintf(summaryPrompt, language, language, window.Start, window.End, payload)
	out, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize availability: %w", err)
	}
	return out, nil
}

// TellJoke fetches a one-liner.
func (s *DefaultAIService) TellJoke(ctx context.Context) (string, error) {
	out, err := s.Gen.GenerateContent(ctx, jokePrompt)
	if err != nil {
		return "", fmt.Errorf("tell joke: %w", err)
	}
	return out, nil
}
