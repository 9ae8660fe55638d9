// File: services/intelligence/intent.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"kaojai/models"
	"kaojai/utils"

	"go.uber.org/zap"
)

const intentPrompt = `You are an assistant for a booking chat channel. Classify the user's message
into exactly one intent and extract any date details mentioned.

Intents:
- "availability": asking when a bookable resource (court, room, slope) is free
- "operating_hour": asking about opening hours or closures
- "book": asking to make a reservation
- "checkslip_register": asking to register this chat for payment-slip (CheckSlip) alerts
- "checkslip_unregister": asking to stop payment-slip (CheckSlip) alerts
- "joke": asking for a joke
- "other": anything else

Respond with ONLY a JSON object, no prose and no code fences:
{"intent": "<one of the intents>", "date": <day of month or null>, "month": <1-12 or null>, "year": <4-digit year or null>}

User message:
%s`

// intentWire mirrors the JSON contract the model is instructed to emit.
type intentWire struct {
	Intent string `json:"intent"`
	Date   int    `json:"date"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

var knownIntents = map[string]bool{
	models.IntentAvailability:        true,
	models.IntentOperatingHour:       true,
	models.IntentBook:                true,
	models.IntentCheckslipRegister:   true,
	models.IntentCheckslipUnregister: true,
	models.IntentJoke:                true,
	models.IntentOther:               true,
}

// ExtractIntent classifies a user message. Output the model mangles beyond
// repair degrades to the "other" intent rather than failing the request.
func (s *DefaultAIService) ExtractIntent(ctx context.Context, message string) (models.IntentResult, error) {
	logger := utils.GetLogger()

	raw, err := s.Gen.GenerateContent(ctx, fmt.Sprintf(intentPrompt, message))
	if err != nil {
		return models.IntentResult{}, fmt.Errorf("extract intent: %w", err)
	}

	parsed, ok := parseIntentJSON(raw)
	if !ok {
		logger.Warn("ExtractIntent: unparseable model output", zap.String("raw", raw))
		return models.IntentResult{Intent: models.IntentOther}, nil
	}

	logger.Info("ExtractIntent: classified message",
		zap.String("intent", parsed.Intent),
		zap.Int("date", parsed.Details.Date),
		zap.Int("month", parsed.Details.Month),
		zap.Int("year", parsed.Details.Year))
	return parsed, nil
}

func parseIntentJSON(raw string) (models.IntentResult, bool) {
	cleaned := stripCodeFences(raw)

	var wire intentWire
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return models.IntentResult{}, false
	}
	if !knownIntents[wire.Intent] {
		return models.IntentResult{Intent: models.IntentOther}, true
	}

	details := models.DateEstimate{Year: wire.Year}
	if wire.Month >= 1 && wire.Month <= 12 {
		details.Month = wire.Month
	}
	if wire.Date >= 1 && wire.Date <= 31 {
		details.Date = wire.Date
	}

	return models.IntentResult{Intent: wire.Intent, Details: details}, true
}

// stripCodeFences tolerates models that wrap JSON in a markdown block.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
