package models

import "time"

// Resource is a bookable unit (court, room, slope) belonging to a tenant.
type Resource struct {
	ID                     string `bson:"id" json:"id"`
	TenantID               string `bson:"tenantId" json:"tenantId"`
	Name                   string `bson:"name" json:"name"`
	SlotGranularityMinutes int    `bson:"slotGranularityMinutes" json:"slotGranularityMinutes"`
}

// FreeInterval is one free interval for a resource as stored by the
// scheduling backend, bounded by absolute instants (UTC).
type FreeInterval struct {
	TenantID   string    `bson:"tenantId" json:"tenantId"`
	ResourceID string    `bson:"resourceId" json:"resourceId"`
	Start      time.Time `bson:"start" json:"start"`
	End        time.Time `bson:"end" json:"end"`
}
