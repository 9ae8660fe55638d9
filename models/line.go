package models

// LINE webhook payload shapes. Only the fields this service reads are
// declared; the webhook body carries more.

type LineWebhookRequest struct {
	Destination string      `json:"destination"`
	Events      []LineEvent `json:"events"`
}

type LineEvent struct {
	Type            string              `json:"type"`
	WebhookEventID  string              `json:"webhookEventId"`
	Timestamp       int64               `json:"timestamp"`
	ReplyToken      string              `json:"replyToken"`
	Source          LineEventSource     `json:"source"`
	Message         LineEventMessage    `json:"message"`
	DeliveryContext LineDeliveryContext `json:"deliveryContext"`
}

type LineEventSource struct {
	Type    string `json:"type"` // "user", "group" or "room"
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

type LineEventMessage struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Text    string       `json:"text"`
	Mention *LineMention `json:"mention,omitempty"`
}

type LineMention struct {
	Mentionees []LineMentionee `json:"mentionees"`
}

type LineMentionee struct {
	Type   string `json:"type"`
	IsSelf bool   `json:"isSelf"`
}

type LineDeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// Outbound message shapes for the reply API.

type LineTextMessage struct {
	Type string `json:"type"` // always "text"
	Text string `json:"text"`
}

// NewTextMessage builds a text reply message.
func NewTextMessage(text string) LineTextMessage {
	return LineTextMessage{Type: "text", Text: text}
}

type LineTemplateMessage struct {
	Type     string               `json:"type"` // always "template"
	AltText  string               `json:"altText"`
	Template LineCarouselTemplate `json:"template"`
}

type LineCarouselTemplate struct {
	Type    string               `json:"type"` // always "carousel"
	Columns []LineCarouselColumn `json:"columns"`
}

type LineCarouselColumn struct {
	Title   string              `json:"title"`
	Text    string              `json:"text"`
	Actions []LineMessageAction `json:"actions"`
}

type LineMessageAction struct {
	Type  string `json:"type"` // "message"
	Label string `json:"label"`
	Text  string `json:"text"`
}
