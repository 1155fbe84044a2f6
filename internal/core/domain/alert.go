package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity grades an operator alert.
type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Alert kinds raised by the purchase workflow.
const (
	AlertKindPurchaseRefunded = "tfn_purchase_refunded"
	AlertKindRefundFailed     = "tfn_refund_failed"
)

// Alert is a notification for operators about a state needing attention.
type Alert struct {
	ID        uuid.UUID         `json:"id"`
	Kind      string            `json:"kind"`
	Severity  AlertSeverity     `json:"severity"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
