package models

// User intents the chatbot understands.
const (
	IntentAvailability       = "availability"
	IntentOperatingHour      = "operating_hour"
	IntentBook               = "book"
	IntentCheckslipRegister  = "checkslip_register"
	IntentCheckslipUnregister = "checkslip_unregister"
	IntentJoke               = "joke"
	IntentOther              = "other"
)

// IntentResult is the classification of one user message, with any date
// details the extractor could pull out of the text.
type IntentResult struct {
	Intent  string       `json:"intent"`
	Details DateEstimate `json:"details,omitempty"`
}
