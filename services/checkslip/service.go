// File: services/checkslip/service.go
package checkslip

import (
	"context"

	tenantRepo "kaojai/database/repository/tenant"
	"kaojai/models"
	"kaojai/utils"

	"go.uber.org/zap"
)

// Reply texts for the registration flows.
const (
	msgRegistered        = "ลงทะเบียนรับแจ้งเตือน CheckSlip เรียบร้อยแล้วค่ะ"
	msgUnregistered      = "ยกเลิกรับแจ้งเตือน CheckSlip เรียบร้อยแล้วค่ะ"
	msgUnsupportedSource = "ขออภัย ไม่สามารถลงทะเบียนจากช่องทางนี้ได้ค่ะ"
	msgNotRegistered     = "ไม่พบการลงทะเบียนแจ้งเตือน CheckSlip สำหรับแชทนี้ค่ะ"
	msgRegisterFailed    = "ขออภัย ระบบไม่สามารถลงทะเบียนได้ในขณะนี้ กรุณาลองใหม่อีกครั้งนะคะ"
	msgUnregisterFailed  = "ขออภัย ระบบไม่สามารถยกเลิกการแจ้งเตือนได้ในขณะนี้ กรุณาลองใหม่อีกครั้งนะคะ"
)

// CheckslipService registers and unregisters chat targets for payment-slip
// alerts. Methods return the user-facing reply text; failures are absorbed
// into an apologetic reply, never surfaced to the chat.
type CheckslipService interface {
	Register(ctx context.Context, source models.LineEventSource) string
	Unregister(ctx context.Context, source models.LineEventSource) string
}

// DefaultCheckslipService stores registrations on the tenant's line_notify
// channel.
type DefaultCheckslipService struct {
	TenantRepo tenantRepo.TenantRepository
	TenantID   string
}

// registrationTarget is the chat to notify: the group when the message came
// from one, the user otherwise.
type registrationTarget struct {
	isGroup bool
	id      string
}

func extractTarget(source models.LineEventSource) (registrationTarget, bool) {
	if source.GroupID != "" {
		return registrationTarget{isGroup: true, id: source.GroupID}, true
	}
	if source.UserID != "" {
		return registrationTarget{id: source.UserID}, true
	}
	return registrationTarget{}, false
}

func (s *DefaultCheckslipService) Register(ctx context.Context, source models.LineEventSource) string {
	logger := utils.GetLogger()

	target, ok := extractTarget(source)
	if !ok {
		logger.Warn("Register: unsupported LINE source", zap.String("sourceType", source.Type))
		return msgUnsupportedSource
	}

	ch, err := s.TenantRepo.GetChannel(ctx, s.TenantID, tenantRepo.LineNotifyChannel)
	if err != nil {
		logger.Error("Register: failed to fetch channel config", zap.Error(err))
		return msgRegisterFailed
	}

	if target.isGroup {
		ch.Config.GroupIDs = appendUnique(ch.Config.GroupIDs, target.id)
	} else {
		ch.Config.UserIDs = appendUnique(ch.Config.UserIDs, target.id)
	}

	if err := s.TenantRepo.UpsertChannel(ctx, *ch); err != nil {
		logger.Error("Register: failed to upsert channel config", zap.Error(err))
		return msgRegisterFailed
	}

	logger.Info("Register: checkslip target registered",
		zap.String("tenantId", s.TenantID),
		zap.Bool("group", target.isGroup))
	return msgRegistered
}

func (s *DefaultCheckslipService) Unregister(ctx context.Context, source models.LineEventSource) string {
	logger := utils.GetLogger()

	target, ok := extractTarget(source)
	if !ok {
		logger.Warn("Unregister: unsupported LINE source", zap.String("sourceType", source.Type))
		return msgUnsupportedSource
	}

	ch, err := s.TenantRepo.GetChannel(ctx, s.TenantID, tenantRepo.LineNotifyChannel)
	if err != nil {
		logger.Error("Unregister: failed to fetch channel config", zap.Error(err))
		return msgUnregisterFailed
	}

	var removed bool
	if target.isGroup {
		ch.Config.GroupIDs, removed = removeID(ch.Config.GroupIDs, target.id)
	} else {
		ch.Config.UserIDs, removed = removeID(ch.Config.UserIDs, target.id)
	}
	if !removed {
		return msgNotRegistered
	}

	if err := s.TenantRepo.UpsertChannel(ctx, *ch); err != nil {
		logger.Error("Unregister: failed to upsert channel config", zap.Error(err))
		return msgUnregisterFailed
	}

	logger.Info("Unregister: checkslip target removed",
		zap.String("tenantId", s.TenantID),
		zap.Bool("group", target.isGroup))
	return msgUnregistered
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []string, id string) ([]string, bool) {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
