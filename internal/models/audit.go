package models

import "time"

// AuditEntry is one row of the backend change history.
type AuditEntry struct {
	ID         string     `json:"id"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Action     string     `json:"action"`
	Actor      string     `json:"actor,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// AuditFilter narrows audit history listings.
type AuditFilter struct {
	EntityType string
	EntityID   string
	Action     string
	ListQuery
}
