package models

// DateEstimate is a partially specified target date extracted from free-text
// user input. A zero field means the user did not mention it.
type DateEstimate struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Date  int `json:"date,omitempty"`
}

// HasDate reports whether a specific day of month was mentioned.
func (e DateEstimate) HasDate() bool { return e.Date != 0 }

// HasMonth reports whether a month was mentioned.
func (e DateEstimate) HasMonth() bool { return e.Month != 0 }

// HasYear reports whether a year was mentioned.
func (e DateEstimate) HasYear() bool { return e.Year != 0 }

// TimeWindow is the inclusive calendar-date range queried against the
// scheduling backend. Both bounds are ISO dates (YYYY-MM-DD).
type TimeWindow struct {
	Start string `json:"timeStart"`
	End   string `json:"timeEnd"`
}

// ResourceSlot is one contiguous free interval for one resource on one
// calendar day, in the tenant's timezone ("HH:MM" wall-clock strings).
type ResourceSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ResourceAvailability groups the free slots of a single resource on a day.
type ResourceAvailability struct {
	ResourceName   string         `json:"resourceName"`
	AvailableSlots []ResourceSlot `json:"availableSlots"`
}

// DayAvailability is one presentable day: only resources with at least one
// free slot appear.
type DayAvailability struct {
	Date               string                 `json:"date"`
	AvailableResources []ResourceAvailability `json:"availableResources"`
}

// AvailabilitySnapshot maps local calendar date -> resource display name ->
// free slots. It is built fresh per request and never persisted.
type AvailabilitySnapshot map[string]map[string][]ResourceSlot

// Add appends a slot under the given date and resource, creating the inner
// map as needed.
func (s AvailabilitySnapshot) Add(date, resourceName string, slot ResourceSlot) {
	byResource, ok := s[date]
	if !ok {
		byResource = make(map[string][]ResourceSlot)
		s[date] = byResource
	}
	byResource[resourceName] = append(byResource[resourceName], slot)
}

// AvailabilityOutcome is the three-way result of a resolution attempt.
// Callers must branch on it, not on len(Days).
type AvailabilityOutcome string

const (
	OutcomeResolved       AvailabilityOutcome = "resolved"
	OutcomePastDate       AvailabilityOutcome = "past_date"
	OutcomeNoAvailability AvailabilityOutcome = "no_availability"
)

// AvailabilityResult is what the availability service hands to the
// presentation layer. Summary may be empty when the summarizer failed;
// Days stays valid regardless.
type AvailabilityResult struct {
	Outcome AvailabilityOutcome `json:"outcome"`
	Window  TimeWindow          `json:"window"`
	Days    []DayAvailability   `json:"days"`
	Summary string              `json:"summary,omitempty"`
}
