package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStage is the persisted position of a TFN purchase in its workflow.
type OrderStage string

const (
	OrderStageDebited   OrderStage = "DEBITED"
	OrderStageCompleted OrderStage = "COMPLETED"
	OrderStageRefunded  OrderStage = "REFUNDED"
)

// TFNOrder tracks one purchase request from wallet debit to completion or refund.
// It is written in the same database transaction as the debit.
type TFNOrder struct {
	ID                  uuid.UUID       `json:"id"`
	RequestID           string          `json:"request_id"`
	AccountID           uuid.UUID       `json:"account_id"`
	VendorID            uuid.UUID       `json:"vendor_id"`
	Quantity            int             `json:"quantity"`
	Rate                decimal.Decimal `json:"rate"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	Numbers             []string        `json:"numbers"`
	Stage               OrderStage      `json:"stage"`
	DebitTransactionID  uuid.UUID       `json:"debit_transaction_id"`
	RefundTransactionID *uuid.UUID      `json:"refund_transaction_id,omitempty"`
	VendorOrderID       string          `json:"vendor_order_id,omitempty"`
	FailureReason       string          `json:"failure_reason,omitempty"`
	CreatedBy           string          `json:"created_by,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsTerminal returns true once the order can no longer change.
func (o *TFNOrder) IsTerminal() bool {
	return o.Stage == OrderStageCompleted || o.Stage == OrderStageRefunded
}

// AwaitingPurchase returns true if money has been taken but numbers are not yet bought.
func (o *TFNOrder) AwaitingPurchase() bool {
	return o.Stage == OrderStageDebited
}
