// File: handlers/webhook.go
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"kaojai/models"
	"kaojai/services/line"
	"kaojai/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	eventDedupPrefix = "line:evt:"
	eventDedupTTL    = 24 * time.Hour
)

// EventHandler processes one webhook event end to end.
type EventHandler interface {
	HandleEvent(ctx context.Context, event models.LineEvent) error
}

// WebhookHandler receives LINE webhook deliveries: it validates the channel
// signature, deduplicates events, and fans each event out to the router.
type WebhookHandler struct {
	Events        EventHandler
	ChannelSecret string
	Dedup         *redis.Client
}

func NewWebhookHandler(events EventHandler, channelSecret string, dedup *redis.Client) *WebhookHandler {
	return &WebhookHandler{
		Events:        events,
		ChannelSecret: channelSecret,
		Dedup:         dedup,
	}
}

func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	logger := utils.GetLogger()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	signature := c.GetHeader("x-line-signature")
	if !line.ValidateSignature(h.ChannelSecret, signature, body) {
		logger.Warn("HandleWebhook: signature validation failed")
		utils.JSONError(c, http.StatusForbidden, "Invalid signature", "")
		return
	}

	var req models.LineWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid webhook payload", err.Error())
		return
	}

	deliveryID := uuid.NewString()
	ctx := c.Request.Context()

	for _, event := range req.Events {
		if h.isDuplicate(ctx, event) {
			logger.Info("HandleWebhook: skipping duplicate event",
				zap.String("deliveryId", deliveryID),
				zap.String("webhookEventId", event.WebhookEventID))
			continue
		}

		if err := h.Events.HandleEvent(ctx, event); err != nil {
			// One failed event must not block the rest of the delivery;
			// LINE retries redeliveries on its own.
			logger.Error("HandleWebhook: event handling failed",
				zap.String("deliveryId", deliveryID),
				zap.String("eventType", event.Type),
				zap.Error(err))
		}
	}

	c.Status(http.StatusOK)
}

// isDuplicate marks the event id as seen; a second delivery of the same id
// within the TTL is dropped. Redis trouble fails open.
func (h *WebhookHandler) isDuplicate(ctx context.Context, event models.LineEvent) bool {
	if h.Dedup == nil || event.WebhookEventID == "" {
		return false
	}
	fresh, err := h.Dedup.SetNX(ctx, eventDedupPrefix+event.WebhookEventID, 1, eventDedupTTL).Result()
	if err != nil {
		utils.GetLogger().Warn("isDuplicate: dedup check failed", zap.Error(err))
		return false
	}
	return !fresh
}
