package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited boundary action.
type AuditAction string

const (
	AuditActionSubmitApplication AuditAction = "SUBMIT_APPLICATION"
	AuditActionProvisionGateway  AuditAction = "PROVISION_GATEWAY"
	AuditActionReceiveEvent      AuditAction = "RECEIVE_EVENT"
)

// AuditLog records one successful write through a boundary handler. It holds
// identifiers only, never the submitted record.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	RequestID    string      `json:"request_id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
