package postgres

import (
	"context"
	"errors"
	"fmt"

	"telco-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// GetByAccountID fetches an account balance (non-locking read).
func (r *BalanceRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.AccountBalance, error) {
	query := `SELECT account_id, amount, currency, updated_at FROM account_balances WHERE account_id = $1`

	b := &domain.AccountBalance{}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&b.AccountID, &b.Amount, &b.Currency, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account balance: %w", err)
	}
	return b, nil
}

// GetByAccountIDForUpdate fetches an account balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetByAccountIDForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.AccountBalance, error) {
	query := `SELECT account_id, amount, currency, updated_at FROM account_balances WHERE account_id = $1 FOR UPDATE`

	b := &domain.AccountBalance{}
	err := tx.QueryRow(ctx, query, accountID).Scan(&b.AccountID, &b.Amount, &b.Currency, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account balance for update: %w", err)
	}
	return b, nil
}

// UpdateAmount sets an account's balance within a transaction.
func (r *BalanceRepo) UpdateAmount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE account_balances SET amount = $1, updated_at = NOW() WHERE account_id = $2`

	tag, err := tx.Exec(ctx, query, amount, accountID)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account balance not found: %s", accountID)
	}
	return nil
}
