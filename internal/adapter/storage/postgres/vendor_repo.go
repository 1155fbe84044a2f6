package postgres

import (
	"context"
	"errors"
	"fmt"

	"telco-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const vendorColumns = `id, vendor_name, username, token_enc, account_ref, status, created_at, updated_at`

// VendorRepo implements ports.VendorRepository.
type VendorRepo struct {
	pool Pool
}

// NewVendorRepo creates a new VendorRepo.
func NewVendorRepo(pool Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

// Create inserts a new DID vendor.
func (r *VendorRepo) Create(ctx context.Context, v *domain.Vendor) error {
	query := `INSERT INTO did_vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Name, v.Username, v.TokenEnc, v.AccountRef, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID fetches a vendor by UUID.
func (r *VendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM did_vendors WHERE id = $1`

	v := &domain.Vendor{}
	if err := scanVendor(r.pool.QueryRow(ctx, query, id), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor by id: %w", err)
	}
	return v, nil
}

// ListActive returns all active vendors, oldest first.
func (r *VendorRepo) ListActive(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM did_vendors WHERE status = 'active' ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active vendors: %w", err)
	}
	defer rows.Close()

	return collectVendors(rows)
}

// List returns one page of vendors, oldest first.
func (r *VendorRepo) List(ctx context.Context, page, pageSize int) ([]domain.Vendor, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM did_vendors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	query := `SELECT ` + vendorColumns + ` FROM did_vendors ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	vendors, err := collectVendors(rows)
	if err != nil {
		return nil, 0, err
	}
	return vendors, total, nil
}

// UpdateStatus changes a vendor's status and returns the updated row.
func (r *VendorRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VendorStatus) (*domain.Vendor, error) {
	query := `UPDATE did_vendors SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + vendorColumns

	v := &domain.Vendor{}
	if err := scanVendor(r.pool.QueryRow(ctx, query, status, id), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update vendor status: %w", err)
	}
	return v, nil
}

func scanVendor(row pgx.Row, v *domain.Vendor) error {
	return row.Scan(&v.ID, &v.Name, &v.Username, &v.TokenEnc, &v.AccountRef, &v.Status, &v.CreatedAt, &v.UpdatedAt)
}

func collectVendors(rows pgx.Rows) ([]domain.Vendor, error) {
	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		v := domain.Vendor{}
		if err := scanVendor(rows, &v); err != nil {
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor rows: %w", err)
	}
	return vendors, nil
}
