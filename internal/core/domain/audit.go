package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionView        AuditAction = "VIEW"
	AuditActionEditField   AuditAction = "EDIT_FIELD"
	AuditActionRegenerate  AuditAction = "REGENERATE"
	AuditActionExportJPEG  AuditAction = "EXPORT_JPEG"
	AuditActionExportPNG   AuditAction = "EXPORT_PNG"
	AuditActionExportPDF   AuditAction = "EXPORT_PDF"
)

// AuditEvent records a single audited action in the session.
// Events are emitted to the log only; nothing is persisted.
type AuditEvent struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
