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

const cdrColumns = `id, account_id, call_id, caller, callee, direction, disposition, start_time, answer_time,
		end_time, duration, billable_seconds, rate_per_minute, cost, created_at`

// CDRRepo implements ports.CDRRepository.
type CDRRepo struct {
	pool Pool
}

// NewCDRRepo creates a new CDRRepo.
func NewCDRRepo(pool Pool) *CDRRepo {
	return &CDRRepo{pool: pool}
}

// Create inserts a call detail record.
func (r *CDRRepo) Create(ctx context.Context, c *domain.CDR) error {
	query := `INSERT INTO cdrs (` + cdrColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.AccountID, c.CallID, c.Caller, c.Callee, c.Direction, c.Disposition, c.StartTime,
		c.AnswerTime, c.EndTime, c.Duration, c.BillableSeconds, c.RatePerMinute, c.Cost, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert cdr %s: %w", c.CallID, ports.ErrDuplicate)
		}
		return fmt.Errorf("insert cdr: %w", err)
	}
	return nil
}

// GetByID fetches a CDR by UUID.
func (r *CDRRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CDR, error) {
	query := `SELECT ` + cdrColumns + ` FROM cdrs WHERE id = $1`

	c := &domain.CDR{}
	if err := scanCDR(r.pool.QueryRow(ctx, query, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cdr by id: %w", err)
	}
	return c, nil
}

// ListByAccount returns one page of an account's calls, latest first.
func (r *CDRRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.CDR, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cdrs WHERE account_id = $1`, accountID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count cdrs: %w", err)
	}

	query := `SELECT ` + cdrColumns + ` FROM cdrs
		WHERE account_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, accountID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list cdrs: %w", err)
	}
	defer rows.Close()

	cdrs := make([]domain.CDR, 0)
	for rows.Next() {
		c := domain.CDR{}
		if err := scanCDR(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scan cdr row: %w", err)
		}
		cdrs = append(cdrs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate cdr rows: %w", err)
	}
	return cdrs, total, nil
}

func scanCDR(row pgx.Row, c *domain.CDR) error {
	return row.Scan(
		&c.ID, &c.AccountID, &c.CallID, &c.Caller, &c.Callee, &c.Direction, &c.Disposition, &c.StartTime,
		&c.AnswerTime, &c.EndTime, &c.Duration, &c.BillableSeconds, &c.RatePerMinute, &c.Cost, &c.CreatedAt,
	)
}
