package ports

import (
	"context"
	"fmt"
	"time"

	"telco-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RequestLock marks a request as in flight across instances.
// Acquire returns an owner token, empty when another holder has the key.
// Release only frees a lock still held with that token.
type RequestLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

// --- Vendor integrations ---

// SearchQuery describes a vendor inventory search.
type SearchQuery struct {
	SearchType string
	Quantity   int
	NPA        int
}

// VendorPurchaseRequest is sent to a vendor to buy specific numbers.
type VendorPurchaseRequest struct {
	Reference string // stable per order, lets the vendor dedupe retries
	Numbers   []string

	// VendorOrderID, when set, names an order already opened at the vendor.
	// The integration completes it instead of opening another.
	VendorOrderID string
}

// VendorPurchaseResult is the vendor's confirmation of a purchase.
type VendorPurchaseResult struct {
	VendorOrderID string
	Numbers       []string
}

// VendorIntegration is one vendor's search/purchase API.
// Implementations return *VendorError for failures reported by or on the way to the vendor.
type VendorIntegration interface {
	Name() string
	Search(ctx context.Context, creds domain.VendorCredentials, q SearchQuery) ([]domain.CandidateNumber, error)
	Purchase(ctx context.Context, creds domain.VendorCredentials, req VendorPurchaseRequest) (*VendorPurchaseResult, error)
}

// VendorRegistry resolves integrations by vendor name.
type VendorRegistry interface {
	Lookup(name string) (VendorIntegration, bool)
}

// VendorError classifies a failed vendor call.
type VendorError struct {
	Vendor     string
	StatusCode int  // 0 when no response was received
	Temporary  bool // timeout, network failure or 5xx
	Err        error

	// VendorOrderID is set when the vendor opened an order before the call failed.
	VendorOrderID string
}

func (e *VendorError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Vendor, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Vendor, e.Err)
}

func (e *VendorError) Unwrap() error {
	return e.Err
}

// --- Service Ports (Business Logic) ---

// WalletLedger owns account balances and the transaction log.
type WalletLedger interface {
	Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, meta domain.DebitMeta) (*domain.WalletTransaction, error)
	// DebitTx runs the debit inside a transaction owned by the caller.
	DebitTx(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, meta domain.DebitMeta) (*domain.WalletTransaction, error)
	Refund(ctx context.Context, originalTxID uuid.UUID, reason string) (*domain.WalletTransaction, error)
	RefundTx(ctx context.Context, tx pgx.Tx, originalTxID uuid.UUID, reason string) (*domain.WalletTransaction, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (*domain.AccountBalance, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
}

// VendorService is the DID vendor directory.
type VendorService interface {
	ActiveVendors(ctx context.Context) ([]domain.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	CreateVendor(ctx context.Context, req CreateVendorRequest) (*domain.Vendor, error)
	ListVendors(ctx context.Context, page, pageSize int) ([]domain.Vendor, int64, error)
	SetVendorStatus(ctx context.Context, id uuid.UUID, status domain.VendorStatus) (*domain.Vendor, error)
}

// CreateVendorRequest holds validated input for vendor registration.
type CreateVendorRequest struct {
	Name       string
	Username   string
	Token      string // plaintext, encrypted before storage
	AccountRef string
	Status     domain.VendorStatus
}

// DIDGateway translates internal search/purchase requests into vendor calls.
type DIDGateway interface {
	// Validate checks the vendor has a registered integration and complete credentials.
	Validate(vendor *domain.Vendor) error
	Search(ctx context.Context, vendor *domain.Vendor, q SearchQuery) ([]domain.CandidateNumber, error)
	// Purchase buys the order's numbers and records them. The order must be DEBITED.
	Purchase(ctx context.Context, vendor *domain.Vendor, order *domain.TFNOrder) ([]domain.DIDDetail, error)
	ListDIDs(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.DIDDetail, int64, error)
}

// TfnService orchestrates toll-free number search and purchase.
type TfnService interface {
	SearchTFN(ctx context.Context, req SearchTFNRequest) ([]domain.CandidateNumber, error)
	PurchaseTFN(ctx context.Context, req PurchaseTFNRequest) (*PurchaseResult, error)
}

// SearchTFNRequest holds validated input for a number search.
type SearchTFNRequest struct {
	SearchType string
	Quantity   int
	NPA        int
}

// PurchaseTFNRequest holds validated input for a number purchase.
type PurchaseTFNRequest struct {
	RequestID  string
	VendorID   uuid.UUID
	AccountID  uuid.UUID
	Quantity   int
	Rate       decimal.Decimal
	Numbers    []string // optional, searched for when empty
	SearchType string
	NPA        int
	Actor      string
}

// PurchaseResult is returned by PurchaseTFN, also on idempotent replay.
type PurchaseResult struct {
	Order    *domain.TFNOrder   `json:"order"`
	DIDs     []domain.DIDDetail `json:"dids"`
	Replayed bool               `json:"replayed"`
}

// CDRService records and reads call detail records.
type CDRService interface {
	Record(ctx context.Context, req RecordCDRRequest) (*domain.CDR, error)
	GetCDR(ctx context.Context, id uuid.UUID) (*domain.CDR, error)
	ListCDRs(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.CDR, int64, error)
}

// RecordCDRRequest holds validated input for CDR ingest.
type RecordCDRRequest struct {
	AccountID     uuid.UUID
	CallID        string
	Caller        string
	Callee        string
	Direction     domain.CallDirection
	Disposition   string
	StartTime     time.Time
	AnswerTime    *time.Time
	EndTime       time.Time
	RatePerMinute decimal.Decimal
}

// AuditService records audit entries for write operations.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// AlertService notifies operators.
type AlertService interface {
	Raise(ctx context.Context, alert domain.Alert)
}
