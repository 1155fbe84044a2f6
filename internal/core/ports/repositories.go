package ports

import (
	"context"
	"errors"

	"telco-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrDuplicate is returned by repositories when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

// BalanceRepository defines persistence operations for account balances.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type BalanceRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.AccountBalance, error)
	GetByAccountIDForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.AccountBalance, error)
	UpdateAmount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal) error
}

// WalletTransactionRepository defines persistence for the append-only ledger.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error
	GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletTransaction, error)
	CheckRefundExists(ctx context.Context, tx pgx.Tx, originalTxID uuid.UUID) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
}

// VendorRepository defines persistence for DID vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	ListActive(ctx context.Context) ([]domain.Vendor, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Vendor, int64, error)
	// UpdateStatus returns the updated vendor, or nil if no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VendorStatus) (*domain.Vendor, error)
}

// DIDRepository defines persistence for purchased numbers.
type DIDRepository interface {
	CreateBatch(ctx context.Context, tx pgx.Tx, dids []domain.DIDDetail) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.DIDDetail, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.DIDDetail, int64, error)
}

// OrderRepository defines persistence for TFN purchase orders.
type OrderRepository interface {
	// Create returns ErrDuplicate when the request id was already used.
	Create(ctx context.Context, tx pgx.Tx, order *domain.TFNOrder) error
	GetByRequestID(ctx context.Context, requestID string) (*domain.TFNOrder, error)
	// SetVendorOrderID records the vendor-side order opened for a DEBITED order.
	SetVendorOrderID(ctx context.Context, id uuid.UUID, vendorOrderID string) error
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, vendorOrderID string) error
	MarkRefunded(ctx context.Context, tx pgx.Tx, id uuid.UUID, refundTxID uuid.UUID, reason string) error
	RecordFailure(ctx context.Context, id uuid.UUID, reason string) error
}

// CDRRepository defines persistence for call detail records.
type CDRRepository interface {
	// Create returns ErrDuplicate when the call id was already recorded.
	Create(ctx context.Context, cdr *domain.CDR) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CDR, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.CDR, int64, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
