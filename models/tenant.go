package models

import "time"

// OperatingHour is one weekday's open/close pair ("HH:MM" local time).
type OperatingHour struct {
	Weekday   int    `bson:"weekday" json:"weekday"` // 0 = Sunday
	OpenTime  string `bson:"openTime" json:"openTime"`
	CloseTime string `bson:"closeTime" json:"closeTime"`
}

// Closure is a planned closed period with an optional reason.
type Closure struct {
	Start  time.Time `bson:"start" json:"start"`
	End    time.Time `bson:"end" json:"end"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// TenantConfig holds the per-tenant settings this service reads.
type TenantConfig struct {
	TenantID       string          `bson:"tenantId" json:"tenantId"`
	Timezone       string          `bson:"timezone" json:"timezone"` // IANA name, empty means UTC
	Language       string          `bson:"language" json:"language"` // summary language, empty means Thai
	Status         string          `bson:"status" json:"status"`
	OperatingHours []OperatingHour `bson:"operatingHours,omitempty" json:"operatingHours,omitempty"`
	Closures       []Closure       `bson:"closures,omitempty" json:"closures,omitempty"`
}

// ChannelConfig lists the chat targets registered for a notification channel.
type ChannelConfig struct {
	UserIDs  []string `bson:"userIds" json:"userIds"`
	GroupIDs []string `bson:"groupIds" json:"groupIds"`
}

// TenantChannel binds a tenant to a notification channel and its targets.
type TenantChannel struct {
	TenantID string        `bson:"tenantId" json:"tenantId"`
	Channel  string        `bson:"channel" json:"channel"`
	Config   ChannelConfig `bson:"config" json:"config"`
	Status   string        `bson:"status" json:"status"`
}
