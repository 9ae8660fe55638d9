// File: services/operatinghours/service.go
package operatinghours

import (
	"context"
	"fmt"
	"strings"
	"time"

	tenantRepo "kaojai/database/repository/tenant"
	"kaojai/utils"

	"go.uber.org/zap"
)

const closureLookahead = 30 * 24 * time.Hour

var thaiDayNames = [7]string{
	"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ", "วันพฤหัสบดี", "วันศุกร์", "วันเสาร์",
}

// OperatingHoursService renders the tenant's weekly hours and upcoming
// closures as one chat message.
type OperatingHoursService interface {
	GetOperatingHoursMessage(ctx context.Context) (string, error)
}

type DefaultOperatingHoursService struct {
	TenantRepo tenantRepo.TenantRepository
	TenantID   string

	// Now is injected for deterministic closure filtering in tests.
	// Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultOperatingHoursService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultOperatingHoursService) GetOperatingHoursMessage(ctx context.Context) (string, error) {
	logger := utils.GetLogger()

	if s.TenantID == "" {
		return "", fmt.Errorf("operating hours: tenant id is required")
	}

	cfg, err := s.TenantRepo.GetConfig(ctx, s.TenantID)
	if err != nil {
		logger.Error("GetOperatingHoursMessage: fetch failed",
			zap.String("tenantId", s.TenantID), zap.Error(err))
		return "", err
	}

	var hourLines []string
	if cfg != nil {
		for _, oh := range cfg.OperatingHours {
			if oh.Weekday < 0 || oh.Weekday > 6 {
				continue
			}
			hourLines = append(hourLines, fmt.Sprintf("%s: %s - %s", thaiDayNames[oh.Weekday], oh.OpenTime, oh.CloseTime))
		}
	}

	now := s.now()
	horizon := now.Add(closureLookahead)
	loc := now.Location()
	if cfg != nil && cfg.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		}
	}

	var closureLines []string
	if cfg != nil {
		for _, c := range cfg.Closures {
			if c.End.Before(now) || c.Start.After(horizon) {
				continue
			}
			line := fmt.Sprintf("%s ถึง %s", formatThaiInstant(c.Start.In(loc)), formatThaiInstant(c.End.In(loc)))
			if c.Reason != "" {
				line += fmt.Sprintf(" (%s)", c.Reason)
			}
			closureLines = append(closureLines, line)
		}
	}
	if len(closureLines) == 0 {
		closureLines = []string{"ไม่มีการปิดให้บริการใน 30 วันข้างหน้า"}
	}

	return fmt.Sprintf("เวลาเปิดให้บริการ\n%s\n\nกำหนดการปิดให้บริการ\n%s",
		strings.Join(hourLines, "\n"), strings.Join(closureLines, "\n")), nil
}

func formatThaiInstant(t time.Time) string {
	return fmt.Sprintf("%d %s %d %02d:%02d",
		t.Day(), thaiMonthShort(t.Month()), t.Year()+543, t.Hour(), t.Minute())
}

func thaiMonthShort(m time.Month) string {
	names := [12]string{
		"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
		"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
	}
	return names[m-1]
}
