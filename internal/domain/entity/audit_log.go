package entity

import (
	"time"
)

// AuditLog represents an audit trail entry for a write the portal sent to the
// gateway. Entries are emitted to the structured log, not persisted.
type AuditLog struct {
	SessionID string    `json:"session_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Action    string    `json:"action"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JSON is free-form audit metadata.
type JSON map[string]interface{}

// Common audit actions
const (
	AuditActionUserCreate        = "user.create"
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionAppointmentCreate = "appointment.create"
)
