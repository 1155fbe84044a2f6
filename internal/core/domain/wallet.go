package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountBalance is the spendable prepaid balance of an account.
// Rows are created by the top-up flow and only mutated by the wallet ledger.
type AccountBalance struct {
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Covers reports whether the balance can pay amount without going negative.
func (b *AccountBalance) Covers(amount decimal.Decimal) bool {
	return b.Amount.GreaterThanOrEqual(amount)
}
