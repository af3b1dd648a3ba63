package models

import "time"

// AuditAction identifies the recorded operation.
type AuditAction string

const (
	AuditActionLogin          AuditAction = "LOGIN"
	AuditActionScheduleUpsert AuditAction = "SCHEDULE_UPSERT"
	AuditActionScheduleImport AuditAction = "SCHEDULE_IMPORT"
	AuditActionRequestSubmit  AuditAction = "REQUEST_SUBMIT"
	AuditActionRequestDecide  AuditAction = "REQUEST_DECIDE"
)

// AuditLog records who did what to which resource. Persisted best-effort.
type AuditLog struct {
	ID         string      `db:"id" json:"id"`
	UserID     *string     `db:"user_id" json:"user_id,omitempty"`
	Action     AuditAction `db:"action" json:"action"`
	Resource   string      `db:"resource" json:"resource"`
	ResourceID *string     `db:"resource_id" json:"resource_id,omitempty"`
	OldValues  []byte      `db:"old_values" json:"old_values,omitempty"`
	NewValues  []byte      `db:"new_values" json:"new_values,omitempty"`
	IPAddress  string      `db:"ip_address" json:"ip_address"`
	UserAgent  string      `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}
