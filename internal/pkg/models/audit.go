package models

import "time"

// AuditAction names an admin mutation published to NATS
type AuditAction string

const (
	AuditCreated  AuditAction = "created"
	AuditUpdated  AuditAction = "updated"
	AuditDeleted  AuditAction = "deleted"
	AuditApproved AuditAction = "approved"
	AuditRejected AuditAction = "rejected"
)

// AuditEvent records one successful admin mutation against the Kaviar API
type AuditEvent struct {
	Resource   string      `json:"resource"`
	Action     AuditAction `json:"action"`
	ResourceID int64       `json:"resource_id"`
	Name       string      `json:"name,omitempty"`
	Actor      string      `json:"actor,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
