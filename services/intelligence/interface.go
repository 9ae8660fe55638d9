// File: services/intelligence/interface.go
package ai

import (
	"context"

	"kaojai/models"
)

// ContentGenerator is the single-method view of the Gemini client, so the
// service can be tested against a canned generator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AIService covers every LLM-backed operation the chatbot delegates.
type AIService interface {
	ExtractIntent(ctx context.Context, message string) (models.IntentResult, error)
	SummarizeAvailability(ctx context.Context, window models.TimeWindow, days []models.DayAvailability, language string) (string, error)
	TellJoke(ctx context.Context) (string, error)
}

// DefaultAIService is the Gemini-backed implementation.
type DefaultAIService struct {
	Gen ContentGenerator
}

func NewDefaultAIService(apiKey string) *DefaultAIService {
	return &DefaultAIService{Gen: NewGeminiClient(apiKey)}
}
