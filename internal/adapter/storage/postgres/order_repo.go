package postgres

import (
	"context"
	"errors"
	"fmt"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, request_id, account_id, vendor_id, quantity, rate, amount, currency, numbers, stage,
		debit_transaction_id, refund_transaction_id, vendor_order_id, failure_reason, created_by, created_at, updated_at`

// OrderRepo implements ports.OrderRepository. The unique request_id column
// is the durable idempotency record for purchases.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts an order within the debit transaction.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.TFNOrder) error {
	query := `INSERT INTO tfn_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := tx.Exec(ctx, query,
		o.ID, o.RequestID, o.AccountID, o.VendorID, o.Quantity, o.Rate, o.Amount, o.Currency,
		o.Numbers, o.Stage, o.DebitTransactionID, o.RefundTransactionID, o.VendorOrderID,
		o.FailureReason, o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert order %s: %w", o.RequestID, ports.ErrDuplicate)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByRequestID fetches an order by its client request id.
func (r *OrderRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.TFNOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM tfn_orders WHERE request_id = $1`

	o := &domain.TFNOrder{}
	err := r.pool.QueryRow(ctx, query, requestID).Scan(
		&o.ID, &o.RequestID, &o.AccountID, &o.VendorID, &o.Quantity, &o.Rate, &o.Amount, &o.Currency,
		&o.Numbers, &o.Stage, &o.DebitTransactionID, &o.RefundTransactionID, &o.VendorOrderID,
		&o.FailureReason, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by request id: %w", err)
	}
	return o, nil
}

// SetVendorOrderID stores the vendor order opened for a DEBITED order so a
// retried purchase completes it instead of opening another.
func (r *OrderRepo) SetVendorOrderID(ctx context.Context, id uuid.UUID, vendorOrderID string) error {
	query := `UPDATE tfn_orders SET vendor_order_id = $1, updated_at = NOW() WHERE id = $2 AND stage = $3`

	tag, err := r.pool.Exec(ctx, query, vendorOrderID, id, domain.OrderStageDebited)
	if err != nil {
		return fmt.Errorf("set vendor order id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not awaiting purchase", id)
	}
	return nil
}

// MarkCompleted moves a DEBITED order to COMPLETED.
func (r *OrderRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, vendorOrderID string) error {
	query := `UPDATE tfn_orders SET stage = $1, vendor_order_id = $2, failure_reason = '', updated_at = NOW()
		WHERE id = $3 AND stage = $4`

	tag, err := tx.Exec(ctx, query, domain.OrderStageCompleted, vendorOrderID, id, domain.OrderStageDebited)
	if err != nil {
		return fmt.Errorf("complete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not awaiting purchase", id)
	}
	return nil
}

// MarkRefunded moves a DEBITED order to REFUNDED.
func (r *OrderRepo) MarkRefunded(ctx context.Context, tx pgx.Tx, id uuid.UUID, refundTxID uuid.UUID, reason string) error {
	query := `UPDATE tfn_orders SET stage = $1, refund_transaction_id = $2, failure_reason = $3, updated_at = NOW()
		WHERE id = $4 AND stage = $5`

	tag, err := tx.Exec(ctx, query, domain.OrderStageRefunded, refundTxID, reason, id, domain.OrderStageDebited)
	if err != nil {
		return fmt.Errorf("refund order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s is not awaiting purchase", id)
	}
	return nil
}

// RecordFailure stores the last failure on an order without changing its stage.
func (r *OrderRepo) RecordFailure(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE tfn_orders SET failure_reason = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.pool.Exec(ctx, query, reason, id); err != nil {
		return fmt.Errorf("record order failure: %w", err)
	}
	return nil
}
