package postgres

import (
	"context"
	"errors"
	"fmt"

	"telco-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletTxColumns = `id, account_id, amount, balance_after, transaction_type, payment_gateway,
		payment_gateway_txn_id, descriptor, reference_id, original_transaction_id, created_by, created_at`

// WalletTransactionRepo implements ports.WalletTransactionRepository.
type WalletTransactionRepo struct {
	pool Pool
}

// NewWalletTransactionRepo creates a new WalletTransactionRepo.
func NewWalletTransactionRepo(pool Pool) *WalletTransactionRepo {
	return &WalletTransactionRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction.
func (r *WalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (` + walletTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.AccountID, t.Amount, t.BalanceAfter, t.TransactionType, t.PaymentGateway,
		t.PaymentGatewayTxnID, t.Descriptor, t.ReferenceID, t.OriginalTransactionID,
		t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry. The read runs on tx when one is given.
func (r *WalletTransactionRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1`

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, id)
	} else {
		row = r.pool.QueryRow(ctx, query, id)
	}

	t := &domain.WalletTransaction{}
	if err := scanWalletTx(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet transaction: %w", err)
	}
	return t, nil
}

// CheckRefundExists checks whether a refund was already written for a debit.
func (r *WalletTransactionRepo) CheckRefundExists(ctx context.Context, tx pgx.Tx, originalTxID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallet_transactions WHERE original_transaction_id = $1 AND transaction_type = 'REFUND')`

	var exists bool
	if err := tx.QueryRow(ctx, query, originalTxID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check refund exists: %w", err)
	}
	return exists, nil
}

// ListByAccount returns one page of an account's ledger, newest first.
func (r *WalletTransactionRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_transactions WHERE account_id = $1`, accountID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count wallet transactions: %w", err)
	}

	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions
		WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.WalletTransaction, 0)
	for rows.Next() {
		t := domain.WalletTransaction{}
		if err := scanWalletTx(rows, &t); err != nil {
			return nil, 0, fmt.Errorf("scan wallet transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wallet transaction rows: %w", err)
	}
	return txns, total, nil
}

func scanWalletTx(row pgx.Row, t *domain.WalletTransaction) error {
	return row.Scan(
		&t.ID, &t.AccountID, &t.Amount, &t.BalanceAfter, &t.TransactionType, &t.PaymentGateway,
		&t.PaymentGatewayTxnID, &t.Descriptor, &t.ReferenceID, &t.OriginalTransactionID,
		&t.CreatedBy, &t.CreatedAt,
	)
}
