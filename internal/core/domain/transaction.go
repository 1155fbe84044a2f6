package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of balance mutation.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeRefund TransactionType = "REFUND"
)

// WalletTransaction is an immutable ledger entry. Exactly one row exists per
// successful debit or refund.
type WalletTransaction struct {
	ID                    uuid.UUID       `json:"id"`
	AccountID             uuid.UUID       `json:"account_id"`
	Amount                decimal.Decimal `json:"amount"`
	BalanceAfter          decimal.Decimal `json:"balance_after"`
	TransactionType       TransactionType `json:"transaction_type"`
	PaymentGateway        string          `json:"payment_gateway,omitempty"`
	PaymentGatewayTxnID   string          `json:"payment_gateway_txn_id,omitempty"`
	Descriptor            string          `json:"descriptor,omitempty"`
	ReferenceID           string          `json:"reference_id,omitempty"`
	OriginalTransactionID *uuid.UUID      `json:"original_transaction_id,omitempty"`
	CreatedBy             string          `json:"created_by,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// IsRefundable returns true if this transaction can be credited back.
func (t *WalletTransaction) IsRefundable() bool {
	return t.TransactionType == TransactionTypeDebit
}

// DebitMeta is the caller-supplied metadata recorded on a ledger entry.
type DebitMeta struct {
	PaymentGateway      string
	PaymentGatewayTxnID string
	Descriptor          string
	ReferenceID         string
	CreatedBy           string
}
