package postgres

import (
	"context"
	"fmt"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const didColumns = `id, account_id, vendor_id, order_id, number, rate, currency, vendor_order_id, created_by, created_at`

// DIDRepo implements ports.DIDRepository.
type DIDRepo struct {
	pool Pool
}

// NewDIDRepo creates a new DIDRepo.
func NewDIDRepo(pool Pool) *DIDRepo {
	return &DIDRepo{pool: pool}
}

// CreateBatch inserts purchased numbers within a database transaction.
// A number that already belongs to someone yields ports.ErrDuplicate.
func (r *DIDRepo) CreateBatch(ctx context.Context, tx pgx.Tx, dids []domain.DIDDetail) error {
	query := `INSERT INTO did_details (` + didColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, d := range dids {
		_, err := tx.Exec(ctx, query,
			d.ID, d.AccountID, d.VendorID, d.OrderID, d.Number, d.Rate,
			d.Currency, d.VendorOrderID, d.CreatedBy, d.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("insert did %s: %w", d.Number, ports.ErrDuplicate)
			}
			return fmt.Errorf("insert did %s: %w", d.Number, err)
		}
	}
	return nil
}

// ListByOrder returns the numbers bought by one order.
func (r *DIDRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.DIDDetail, error) {
	query := `SELECT ` + didColumns + ` FROM did_details WHERE order_id = $1 ORDER BY number ASC`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list dids by order: %w", err)
	}
	defer rows.Close()

	return collectDIDs(rows)
}

// ListByAccount returns one page of an account's numbers, newest first.
func (r *DIDRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.DIDDetail, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM did_details WHERE account_id = $1`, accountID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count dids: %w", err)
	}

	query := `SELECT ` + didColumns + ` FROM did_details
		WHERE account_id = $1 ORDER BY created_at DESC, number ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, accountID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list dids by account: %w", err)
	}
	defer rows.Close()

	dids, err := collectDIDs(rows)
	if err != nil {
		return nil, 0, err
	}
	return dids, total, nil
}

func collectDIDs(rows pgx.Rows) ([]domain.DIDDetail, error) {
	dids := make([]domain.DIDDetail, 0)
	for rows.Next() {
		d := domain.DIDDetail{}
		err := rows.Scan(
			&d.ID, &d.AccountID, &d.VendorID, &d.OrderID, &d.Number, &d.Rate,
			&d.Currency, &d.VendorOrderID, &d.CreatedBy, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan did row: %w", err)
		}
		dids = append(dids, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate did rows: %w", err)
	}
	return dids, nil
}
