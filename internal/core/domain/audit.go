package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionTFNPurchase        AuditAction = "TFN_PURCHASE"
	AuditActionVendorCreate       AuditAction = "VENDOR_CREATE"
	AuditActionVendorStatusChange AuditAction = "VENDOR_STATUS_CHANGE"
	AuditActionCDRCreate          AuditAction = "CDR_CREATE"
)

// AuditLog records a single audited write in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
