package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"telco-billing/config"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/internal/core/ports/mocks"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tfnTestDeps struct {
	svc        *TfnServiceImpl
	vendors    *mocks.MockVendorService
	gateway    *mocks.MockDIDGateway
	ledger     *mocks.MockWalletLedger
	orderRepo  *mocks.MockOrderRepository
	didRepo    *mocks.MockDIDRepository
	idempCache *mocks.MockIdempotencyCache
	lock       *mocks.MockRequestLock
	transactor *mocks.MockDBTransactor
	alerts     *mocks.MockAlertService
}

var testTFNConfig = config.TFNConfig{
	DefaultSearchType: "tollfree",
	PurchaseAttempts:  3,
	RetryBackoff:      10 * time.Millisecond,
	IdempotencyTTL:    time.Hour,
	Currency:          "USD",
}

func setupTfnService(t *testing.T, cfg config.TFNConfig) *tfnTestDeps {
	ctrl := gomock.NewController(t)
	d := &tfnTestDeps{
		vendors:    mocks.NewMockVendorService(ctrl),
		gateway:    mocks.NewMockDIDGateway(ctrl),
		ledger:     mocks.NewMockWalletLedger(ctrl),
		orderRepo:  mocks.NewMockOrderRepository(ctrl),
		didRepo:    mocks.NewMockDIDRepository(ctrl),
		idempCache: mocks.NewMockIdempotencyCache(ctrl),
		lock:       mocks.NewMockRequestLock(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		alerts:     mocks.NewMockAlertService(ctrl),
	}
	d.svc = NewTfnService(d.vendors, d.gateway, d.ledger, d.orderRepo, d.didRepo,
		d.idempCache, d.lock, d.transactor, d.alerts, cfg, zerolog.Nop())
	return d
}

func purchaseRequest(vendorID, accountID uuid.UUID) ports.PurchaseTFNRequest {
	return ports.PurchaseTFNRequest{
		RequestID: "req-1",
		VendorID:  vendorID,
		AccountID: accountID,
		Quantity:  2,
		Rate:      decimal.NewFromInt(10),
		Actor:     "ops@example.com",
	}
}

// expectFreshRequest sets up cache miss, lock acquire/release and no prior order.
func (d *tfnTestDeps) expectFreshRequest(key string) {
	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), key, "lock-token").Return(nil)
	d.orderRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(nil, nil)
}

// ==================== SearchTFN ====================

func TestTfnService_SearchTFN_Validation(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)

	_, err := d.svc.SearchTFN(context.Background(), ports.SearchTFNRequest{Quantity: 0, NPA: -1})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
	assert.Contains(t, appErr.Fields, "searchType")
	assert.Contains(t, appErr.Fields, "quantity")
	assert.Contains(t, appErr.Fields, "npa")
}

func TestTfnService_SearchTFN_NoActiveVendor(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	ctx := context.Background()

	d.vendors.EXPECT().ActiveVendors(ctx).Return(nil, nil)
	// no gateway call expected

	_, err := d.svc.SearchTFN(ctx, ports.SearchTFNRequest{SearchType: "tollfree", Quantity: 5, NPA: 800})
	assertAppError(t, err, "VND_002")
}

func TestTfnService_SearchTFN_UsesOldestActiveVendor(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	ctx := context.Background()
	oldest := commioVendor()
	newer := commioVendor()

	d.vendors.EXPECT().ActiveVendors(ctx).Return([]domain.Vendor{*oldest, *newer}, nil)
	d.gateway.EXPECT().Search(ctx, gomock.Any(), ports.SearchQuery{SearchType: "tollfree", Quantity: 1, NPA: 833}).
		DoAndReturn(func(_ context.Context, v *domain.Vendor, _ ports.SearchQuery) ([]domain.CandidateNumber, error) {
			assert.Equal(t, oldest.ID, v.ID)
			return []domain.CandidateNumber{{Number: "8335550100"}}, nil
		})

	numbers, err := d.svc.SearchTFN(ctx, ports.SearchTFNRequest{SearchType: "tollfree", Quantity: 1, NPA: 833})
	require.NoError(t, err)
	assert.Len(t, numbers, 1)
}

func TestTfnService_SearchTFN_GatewayError(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	ctx := context.Background()

	d.vendors.EXPECT().ActiveVendors(ctx).Return([]domain.Vendor{*commioVendor()}, nil)
	d.gateway.EXPECT().Search(ctx, gomock.Any(), gomock.Any()).Return(nil, apperror.ErrVendorMisconfigured(errors.New("no token")))

	_, err := d.svc.SearchTFN(ctx, ports.SearchTFNRequest{SearchType: "tollfree", Quantity: 1})
	assertAppError(t, err, "VND_004")
}

// ==================== PurchaseTFN: validation & idempotency ====================

func TestTfnService_PurchaseTFN_Validation(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)

	tests := []struct {
		name  string
		mut   func(r *ports.PurchaseTFNRequest)
		field string
	}{
		{"missing vendor", func(r *ports.PurchaseTFNRequest) { r.VendorID = uuid.Nil }, "vendorId"},
		{"missing account", func(r *ports.PurchaseTFNRequest) { r.AccountID = uuid.Nil }, "accountId"},
		{"zero qty", func(r *ports.PurchaseTFNRequest) { r.Quantity = 0 }, "didQty"},
		{"zero rate", func(r *ports.PurchaseTFNRequest) { r.Rate = decimal.Zero }, "rate"},
		{"numbers mismatch", func(r *ports.PurchaseTFNRequest) { r.Numbers = []string{"8005550100"} }, "numbers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := purchaseRequest(uuid.New(), uuid.New())
			tt.mut(&req)
			_, err := d.svc.PurchaseTFN(context.Background(), req)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VAL_001", appErr.Code)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestTfnService_PurchaseTFN_CachedReplay(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)

	cached, _ := json.Marshal(ports.PurchaseResult{
		Order: &domain.TFNOrder{RequestID: "req-1", Stage: domain.OrderStageCompleted},
		DIDs:  []domain.DIDDetail{{Number: "8005550100"}, {Number: "8005550101"}},
	})
	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

	result, err := d.svc.PurchaseTFN(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Len(t, result.DIDs, 2)
}

func TestTfnService_PurchaseTFN_InProgress(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)

	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("", nil)

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_004")
}

func TestTfnService_PurchaseTFN_ReplaysCompletedOrder(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)
	order := &domain.TFNOrder{ID: uuid.New(), RequestID: "req-1", AccountID: req.AccountID, Stage: domain.OrderStageCompleted}

	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("redis down"))
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("", errors.New("redis down"))
	d.orderRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(order, nil)
	d.didRepo.EXPECT().ListByOrder(gomock.Any(), order.ID).Return([]domain.DIDDetail{{Number: "a"}, {Number: "b"}}, nil)
	d.idempCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(errors.New("redis down"))

	result, err := d.svc.PurchaseTFN(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Len(t, result.DIDs, 2)
}

func TestTfnService_PurchaseTFN_RefundedOrder(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)

	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), key, "lock-token").Return(nil)
	d.orderRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").
		Return(&domain.TFNOrder{AccountID: req.AccountID, Stage: domain.OrderStageRefunded}, nil)

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_003")
}

func TestTfnService_PurchaseTFN_RequestIDOfOtherAccount(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)

	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), key, "lock-token").Return(nil)
	d.orderRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").
		Return(&domain.TFNOrder{AccountID: uuid.New(), Stage: domain.OrderStageCompleted}, nil)

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "VAL_001")
}

func TestTfnService_PurchaseTFN_ResumesDebitedOrder(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)
	order := &domain.TFNOrder{
		ID: uuid.New(), RequestID: "req-1", AccountID: req.AccountID, VendorID: vendor.ID,
		Quantity: 2, Numbers: []string{"a", "b"}, Stage: domain.OrderStageDebited,
	}

	d.idempCache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	d.lock.EXPECT().Acquire(gomock.Any(), key, requestLockTTL).Return("lock-token", nil)
	d.lock.EXPECT().Release(gomock.Any(), key, "lock-token").Return(nil)
	d.orderRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(order, nil)
	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	// no debit: the ledger mock has no expectations
	d.gateway.EXPECT().Purchase(gomock.Any(), vendor, order).Return([]domain.DIDDetail{{Number: "a"}, {Number: "b"}}, nil)
	d.idempCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(nil)

	result, err := d.svc.PurchaseTFN(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Replayed)
	assert.Len(t, result.DIDs, 2)
}

// ==================== PurchaseTFN: resolution ====================

func TestTfnService_PurchaseTFN_VendorNotFound(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	req := purchaseRequest(uuid.New(), uuid.New())
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))

	d.vendors.EXPECT().GetVendor(gomock.Any(), req.VendorID).Return(nil, apperror.ErrVendorNotFound())

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "VND_001")
}

func TestTfnService_PurchaseTFN_InactiveVendor(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	vendor.Status = domain.VendorStatusInactive
	req := purchaseRequest(vendor.ID, uuid.New())
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "VND_001")
}

func TestTfnService_PurchaseTFN_UnsupportedVendor(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	vendor.Name = "Bandwidth"
	req := purchaseRequest(vendor.ID, uuid.New())
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(apperror.ErrUnsupportedVendor("Bandwidth"))

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "VND_003")
}

func TestTfnService_PurchaseTFN_InsufficientInventory(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	d.gateway.EXPECT().Search(gomock.Any(), vendor, ports.SearchQuery{SearchType: "tollfree", Quantity: 2}).
		Return([]domain.CandidateNumber{{Number: "8005550100"}}, nil)
	// no debit expected

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_001")
}

// ==================== PurchaseTFN: debit & purchase ====================

func TestTfnService_PurchaseTFN_Success(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	key := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)
	d.expectFreshRequest(key)
	tx := &mockTx{}
	debitID := uuid.New()

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	d.gateway.EXPECT().Search(gomock.Any(), vendor, gomock.Any()).Return([]domain.CandidateNumber{
		{Number: "8005550100"}, {Number: "8005550101"}, {Number: "8005550102"},
	}, nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.ledger.EXPECT().DebitTx(gomock.Any(), tx, req.AccountID, decEq("10"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ decimal.Decimal, meta domain.DebitMeta) (*domain.WalletTransaction, error) {
			assert.Equal(t, "req-1", meta.ReferenceID)
			assert.Equal(t, "ops@example.com", meta.CreatedBy)
			return &domain.WalletTransaction{ID: debitID}, nil
		})
	d.orderRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, o *domain.TFNOrder) error {
		assert.Equal(t, domain.OrderStageDebited, o.Stage)
		assert.Equal(t, debitID, o.DebitTransactionID)
		assert.Equal(t, []string{"8005550100", "8005550101"}, o.Numbers)
		assert.Equal(t, "USD", o.Currency)
		return nil
	})
	d.gateway.EXPECT().Purchase(gomock.Any(), vendor, gomock.Any()).
		Return([]domain.DIDDetail{{Number: "8005550100"}, {Number: "8005550101"}}, nil)
	d.idempCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(nil)

	result, err := d.svc.PurchaseTFN(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, result.DIDs, 2)
	assert.False(t, result.Replayed)
}

func TestTfnService_PurchaseTFN_RatePerNumber(t *testing.T) {
	cfg := testTFNConfig
	cfg.RatePerNumber = true
	d := setupTfnService(t, cfg)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	req.Numbers = []string{"8005550100", "8005550101"}
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))
	tx := &mockTx{}

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	// caller named the numbers: no search
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.ledger.EXPECT().DebitTx(gomock.Any(), tx, req.AccountID, decEq("20"), gomock.Any()).
		Return(nil, apperror.ErrInsufficientBalance())

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "WAL_001")
}

func TestTfnService_PurchaseTFN_DuplicateOrderRow(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	req.Numbers = []string{"a", "b"}
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))
	tx := &mockTx{}

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.ledger.EXPECT().DebitTx(gomock.Any(), tx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.WalletTransaction{ID: uuid.New()}, nil)
	d.orderRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(ports.ErrDuplicate)

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_004")
}

func TestTfnService_PurchaseTFN_VendorFailureRefunds(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	req.Numbers = []string{"a", "b"}
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))
	debitTx, refundTx := &mockTx{}, &mockTx{}
	debitID, refundID := uuid.New(), uuid.New()

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	gomock.InOrder(
		d.transactor.EXPECT().Begin(gomock.Any()).Return(debitTx, nil),
		d.transactor.EXPECT().Begin(gomock.Any()).Return(refundTx, nil),
	)
	d.ledger.EXPECT().DebitTx(gomock.Any(), debitTx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.WalletTransaction{ID: debitID}, nil)
	d.orderRepo.EXPECT().Create(gomock.Any(), debitTx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().Purchase(gomock.Any(), vendor, gomock.Any()).
		Return(nil, apperror.ErrPurchaseFailedAfterDebit(apperror.ErrVendorDeclined(errors.New("422"))))
	d.ledger.EXPECT().RefundTx(gomock.Any(), refundTx, debitID, gomock.Any()).
		Return(&domain.WalletTransaction{ID: refundID}, nil)
	d.orderRepo.EXPECT().MarkRefunded(gomock.Any(), refundTx, gomock.Any(), refundID, gomock.Any()).Return(nil)
	d.alerts.EXPECT().Raise(gomock.Any(), gomock.Any()).Do(func(_ context.Context, a domain.Alert) {
		assert.Equal(t, domain.AlertKindPurchaseRefunded, a.Kind)
		assert.Equal(t, "req-1", a.Fields["request_id"])
	})

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_002")
}

func TestTfnService_PurchaseTFN_RefundFailureRaisesCritical(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	req.Numbers = []string{"a", "b"}
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))
	tx := &mockTx{}

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil).Times(2)
	d.ledger.EXPECT().DebitTx(gomock.Any(), tx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.WalletTransaction{ID: uuid.New()}, nil)
	d.orderRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().Purchase(gomock.Any(), vendor, gomock.Any()).
		Return(nil, apperror.ErrPurchaseFailedAfterDebit(apperror.ErrVendorUnavailable(context.DeadlineExceeded)))
	d.ledger.EXPECT().RefundTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
		Return(nil, apperror.InternalError(errors.New("db gone")))
	d.orderRepo.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.alerts.EXPECT().Raise(gomock.Any(), gomock.Any()).Do(func(_ context.Context, a domain.Alert) {
		assert.Equal(t, domain.AlertKindRefundFailed, a.Kind)
		assert.Equal(t, domain.AlertSeverityCritical, a.Severity)
		assert.NotEmpty(t, a.Fields["refund_error"])
	})

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "TFN_002")
}

func TestTfnService_PurchaseTFN_RecordingFailureLeavesOrderDebited(t *testing.T) {
	d := setupTfnService(t, testTFNConfig)
	vendor := commioVendor()
	req := purchaseRequest(vendor.ID, uuid.New())
	req.Numbers = []string{"a", "b"}
	d.expectFreshRequest(domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID))
	tx := &mockTx{}

	d.vendors.EXPECT().GetVendor(gomock.Any(), vendor.ID).Return(vendor, nil)
	d.gateway.EXPECT().Validate(vendor).Return(nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.ledger.EXPECT().DebitTx(gomock.Any(), tx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.WalletTransaction{ID: uuid.New()}, nil)
	d.orderRepo.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.gateway.EXPECT().Purchase(gomock.Any(), vendor, gomock.Any()).
		Return(nil, apperror.InternalError(errors.New("commit failed")))
	d.orderRepo.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	// no refund, no alert

	_, err := d.svc.PurchaseTFN(context.Background(), req)
	assertAppError(t, err, "SYS_001")
}
