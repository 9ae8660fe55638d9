// File: services/line/handler.go
package line

import (
	"context"
	"strings"

	"kaojai/models"
	"kaojai/services/availability"
	"kaojai/services/checkslip"
	ai "kaojai/services/intelligence"
	"kaojai/services/operatinghours"
	"kaojai/utils"

	"go.uber.org/zap"
)

const (
	msgGreeting = "👋สวัสดีจ้า... น้องเข้าใจ 💚 เองจ้า...\n" +
		"ถามวันว่างได้ ให้วัน ให้เดือน มาเลย\n" +
		"หรือ ถามชั่วโมงทำการก็ได้ ⏰ ให้เล่าเรื่องตลกก็ได้นะ 😂\n" +
		"แวะไปบ้านน้องได้น้า 🏠 KaoJai.ai"
	msgApology       = "ขออภัยค่ะ ระบบขัดข้องชั่วคราว กรุณาลองใหม่อีกครั้งนะคะ"
	msgBookingClosed = "ตอนนี้ยังจองให้ไม่ได้เลย 😢 เขาไม่เปิด API ให้งะ 😭"
	msgHoursApology  = "ขออภัย ไม่สามารถดึงข้อมูลเวลาเปิดทำการได้ในขณะนี้"
	msgJokeFallback  = "ขอโทษด้วยนะ ตอนนี้เล่าเรื่องตลกไม่ได้ ลองใหม่อีกครั้งได้เลยครับ/ค่ะ 🙏"
	msgFollowWelcome = "ขอบคุณที่เพิ่มน้องเข้าใจเป็นเพื่อนน้า 💚 พิมพ์ \"menu\" ได้เลยถ้าอยากรู้ว่าน้องช่วยอะไรได้บ้าง"
)

// Replier sends reply messages for a webhook event.
type Replier interface {
	ReplyMessage(ctx context.Context, replyToken string, messages []any) error
}

// MessageHandler routes webhook events to the right service and replies.
type MessageHandler struct {
	Client       Replier
	AI           ai.AIService
	Availability availability.AvailabilityService
	Checkslip    checkslip.CheckslipService
	Hours        operatinghours.OperatingHoursService
}

// HandleEvent processes one webhook event. Only text messages and follow
// events get a reply; everything else is ignored.
func (h *MessageHandler) HandleEvent(ctx context.Context, event models.LineEvent) error {
	switch event.Type {
	case "follow":
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgFollowWelcome))
	case "message":
		if event.Message.Type != "text" {
			return nil
		}
		return h.handleTextMessage(ctx, event)
	default:
		utils.GetLogger().Debug("HandleEvent: ignoring event", zap.String("type", event.Type))
		return nil
	}
}

func (h *MessageHandler) handleTextMessage(ctx context.Context, event models.LineEvent) error {
	logger := utils.GetLogger()
	text := event.Message.Text
	logger.Info("handleTextMessage: received user message", zap.String("message", text))

	if isGettingStarted(event.Message) {
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgGreeting))
	}

	intent, err := h.AI.ExtractIntent(ctx, text)
	if err != nil {
		logger.Error("handleTextMessage: intent extraction failed", zap.Error(err))
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgApology))
	}

	switch intent.Intent {
	case models.IntentAvailability:
		result, err := h.Availability.CheckAvailability(ctx, intent.Details)
		if err != nil {
			logger.Error("handleTextMessage: availability check failed", zap.Error(err))
			return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgApology))
		}
		return h.Client.ReplyMessage(ctx, event.ReplyToken, BuildAvailabilityMessages(result))

	case models.IntentOperatingHour:
		message, err := h.Hours.GetOperatingHoursMessage(ctx)
		if err != nil {
			logger.Error("handleTextMessage: operating hours failed", zap.Error(err))
			return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgHoursApology))
		}
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(message))

	case models.IntentCheckslipRegister:
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(h.Checkslip.Register(ctx, event.Source)))

	case models.IntentCheckslipUnregister:
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(h.Checkslip.Unregister(ctx, event.Source)))

	case models.IntentJoke:
		joke, err := h.AI.TellJoke(ctx)
		if err != nil || strings.TrimSpace(joke) == "" {
			logger.Warn("handleTextMessage: joke fetch failed", zap.Error(err))
			joke = msgJokeFallback
		}
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(joke))

	case models.IntentBook:
		// No supplier API yet; creation stays unimplemented.
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgBookingClosed))

	default:
		return h.reply(ctx, event.ReplyToken, models.NewTextMessage(msgGreeting))
	}
}

func (h *MessageHandler) reply(ctx context.Context, replyToken string, message any) error {
	return h.Client.ReplyMessage(ctx, replyToken, []any{message})
}

// isGettingStarted matches the menu triggers and self-mentions that bypass
// intent extraction.
func isGettingStarted(message models.LineEventMessage) bool {
	normalized := strings.ToLower(strings.TrimSpace(message.Text))
	if normalized == "kj" || normalized == "menu" {
		return true
	}
	if message.Mention == nil {
		return false
	}
	for _, m := range message.Mention.Mentionees {
		if m.Type == "user" && m.IsSelf {
			return true
		}
	}
	return false
}
