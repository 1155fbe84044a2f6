package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DIDDetail is a purchased phone number owned by an account.
type DIDDetail struct {
	ID            uuid.UUID       `json:"id"`
	AccountID     uuid.UUID       `json:"account_id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	OrderID       uuid.UUID       `json:"order_id"`
	Number        string          `json:"number"`
	Rate          decimal.Decimal `json:"rate"`
	Currency      string          `json:"currency"`
	VendorOrderID string          `json:"vendor_order_id,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
