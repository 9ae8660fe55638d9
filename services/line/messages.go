// File: services/line/messages.go
package line

import (
	"fmt"
	"strings"
	"time"

	"kaojai/models"
)

// Display caps. These are presentation policy only; the availability core
// always returns full slot lists.
const (
	maxDayCards           = 5
	maxResourcesPerCard   = 3
	maxSlotsPerResource   = 3
	carouselTextMaxLength = 60
	carouselTitleMaxLen   = 40
)

var thaiWeekdays = [7]string{
	"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ", "วันพฤหัสบดี", "วันศุกร์", "วันเสาร์",
}

var thaiMonthsShort = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var thaiMonthsFull = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// clampText shortens text to maxLength runes, ellipsis included.
func clampText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-1]) + "…"
}

// formatDateTitle renders an ISO date as a Thai card title,
// e.g. "วันพุธที่ 17 ก.ย.".
func formatDateTitle(dateStr string) string {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%sที่ %d %s", thaiWeekdays[date.Weekday()], date.Day(), thaiMonthsShort[date.Month()-1])
}

// formatDateForAction renders an ISO date with full month and Buddhist-era
// year, e.g. "17 กันยายน 2568".
func formatDateForAction(dateStr string) string {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", date.Day(), thaiMonthsFull[date.Month()-1], date.Year()+543)
}

// formatAvailabilityDetails renders one day's resources for a carousel card,
// honoring the per-card caps with "…" truncation markers.
func formatAvailabilityDetails(resources []models.ResourceAvailability) string {
	shown := resources
	if len(shown) > maxResourcesPerCard {
		shown = shown[:maxResourcesPerCard]
	}

	details := make([]string, 0, len(shown)+1)
	for _, r := range shown {
		slots := r.AvailableSlots
		suffix := ""
		if len(slots) > maxSlotsPerResource {
			slots = slots[:maxSlotsPerResource]
			suffix = "…"
		}
		slotTexts := make([]string, 0, len(slots))
		for _, s := range slots {
			slotTexts = append(slotTexts, s.Start+"-"+s.End)
		}
		details = append(details, fmt.Sprintf("%s: %s%s", r.ResourceName, strings.Join(slotTexts, ", "), suffix))
	}
	if len(resources) > maxResourcesPerCard {
		details = append(details, "…")
	}

	text := strings.TrimSpace(strings.Join(details, "\n"))
	if text == "" {
		text = "มีเวลาว่างหลายช่วงเวลาให้เลือก"
	}
	return clampText(text, carouselTextMaxLength)
}

// BuildAvailabilityMessages turns an availability result into reply
// messages: outcome-specific text for PastDate and NoAvailability, and a
// summary plus day carousel for Resolved. Days stay in the proximity order
// the selector chose.
func BuildAvailabilityMessages(result *models.AvailabilityResult) []any {
	switch result.Outcome {
	case models.OutcomePastDate:
		return []any{models.NewTextMessage("วันที่ที่ถามมาผ่านไปแล้วน้า 😅 ลองบอกวันในอนาคตมาอีกทีได้เลย")}
	case models.OutcomeNoAvailability:
		return []any{models.NewTextMessage("ช่วงนั้นยังไม่มีเวลาว่างเลยค่ะ 😢 ลองถามวันอื่นดูได้นะ")}
	}

	messages := make([]any, 0, 2)
	if result.Summary != "" {
		messages = append(messages, models.NewTextMessage(result.Summary))
	}

	days := result.Days
	if len(days) > maxDayCards {
		days = days[:maxDayCards]
	}
	columns := make([]models.LineCarouselColumn, 0, len(days))
	for _, day := range days {
		columns = append(columns, models.LineCarouselColumn{
			Title: clampText(formatDateTitle(day.Date), carouselTitleMaxLen),
			Text:  formatAvailabilityDetails(day.AvailableResources),
			Actions: []models.LineMessageAction{
				{
					Type:  "message",
					Label: "สนใจวันนี้",
					Text:  "สนใจวันที่ " + formatDateForAction(day.Date),
				},
			},
		})
	}

	messages = append(messages, models.LineTemplateMessage{
		Type:    "template",
		AltText: "เวลาว่างที่ใกล้เคียงกับวันที่ถามมา",
		Template: models.LineCarouselTemplate{
			Type:    "carousel",
			Columns: columns,
		},
	})
	return messages
}
