package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"telco-billing/config"
	"telco-billing/internal/adapter/vendors/commio"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gatewayTestDeps struct {
	gw          *DIDGatewayImpl
	registry    *mocks.MockVendorRegistry
	integration *mocks.MockVendorIntegration
	didRepo     *mocks.MockDIDRepository
	orderRepo   *mocks.MockOrderRepository
	transactor  *mocks.MockDBTransactor
	sleeps      []time.Duration
}

func setupGateway(t *testing.T, attempts int) *gatewayTestDeps {
	ctrl := gomock.NewController(t)
	d := &gatewayTestDeps{
		registry:    mocks.NewMockVendorRegistry(ctrl),
		integration: mocks.NewMockVendorIntegration(ctrl),
		didRepo:     mocks.NewMockDIDRepository(ctrl),
		orderRepo:   mocks.NewMockOrderRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
	}
	d.gw = NewDIDGateway(d.registry, d.didRepo, d.orderRepo, d.transactor, GatewayConfig{
		Timeout:          time.Second,
		PurchaseAttempts: attempts,
		RetryBackoff:     100 * time.Millisecond,
	}, zerolog.Nop())
	d.gw.sleep = func(_ context.Context, dur time.Duration) error {
		d.sleeps = append(d.sleeps, dur)
		return nil
	}
	return d
}

func commioVendor() *domain.Vendor {
	return &domain.Vendor{
		ID:         uuid.New(),
		Name:       domain.VendorNameCommio,
		Username:   "api-user",
		Token:      "api-token",
		AccountRef: "12345",
		Status:     domain.VendorStatusActive,
	}
}

func debitedOrder(numbers ...string) *domain.TFNOrder {
	return &domain.TFNOrder{
		ID:        uuid.New(),
		RequestID: "req-42",
		AccountID: uuid.New(),
		VendorID:  uuid.New(),
		Quantity:  len(numbers),
		Amount:    decimal.NewFromInt(10),
		Currency:  "USD",
		Numbers:   numbers,
		Stage:     domain.OrderStageDebited,
		CreatedBy: "ops",
	}
}

func unavailable() error {
	return &ports.VendorError{Vendor: "Commio", StatusCode: http.StatusServiceUnavailable, Temporary: true, Err: errors.New("upstream busy")}
}

func declined() error {
	return &ports.VendorError{Vendor: "Commio", StatusCode: http.StatusUnprocessableEntity, Err: errors.New("number not available")}
}

// ==================== Validate / Search ====================

func TestDIDGateway_Validate(t *testing.T) {
	d := setupGateway(t, 1)

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	assert.NoError(t, d.gw.Validate(commioVendor()))

	d.registry.EXPECT().Lookup("Telnyx").Return(nil, false)
	v := commioVendor()
	v.Name = "Telnyx"
	assertAppError(t, d.gw.Validate(v), "VND_003")

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	v = commioVendor()
	v.Token = ""
	assertAppError(t, d.gw.Validate(v), "VND_004")
}

func TestDIDGateway_Search_Success(t *testing.T) {
	d := setupGateway(t, 1)
	vendor := commioVendor()
	q := ports.SearchQuery{SearchType: "tollfree", Quantity: 2, NPA: 800}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Search(gomock.Any(), domain.VendorCredentials{
		Username: "api-user", Token: "api-token", AccountRef: "12345",
	}, q).DoAndReturn(func(ctx context.Context, _ domain.VendorCredentials, _ ports.SearchQuery) ([]domain.CandidateNumber, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "vendor call must be bounded")
		return []domain.CandidateNumber{{Number: "8005550100"}, {Number: "8005550101"}}, nil
	})

	numbers, err := d.gw.Search(context.Background(), vendor, q)
	require.NoError(t, err)
	assert.Len(t, numbers, 2)
}

func TestDIDGateway_Search_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"5xx", unavailable(), "VND_005"},
		{"4xx", declined(), "VND_006"},
		{"deadline", context.DeadlineExceeded, "VND_005"},
		{"network", errors.New("dial tcp: connection refused"), "VND_005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupGateway(t, 1)
			d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
			d.integration.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			_, err := d.gw.Search(context.Background(), commioVendor(), ports.SearchQuery{Quantity: 1})
			assertAppError(t, err, tt.code)
		})
	}
}

// ==================== Purchase ====================

func TestDIDGateway_Purchase_Success(t *testing.T) {
	d := setupGateway(t, 3)
	ctx := context.Background()
	vendor := commioVendor()
	order := debitedOrder("8005550100", "8005550101")
	tx := &mockTx{}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), ports.VendorPurchaseRequest{
		Reference: "req-42",
		Numbers:   []string{"8005550100", "8005550101"},
	}).Return(&ports.VendorPurchaseResult{VendorOrderID: "V-1"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Len(2)).Return(nil)
	d.orderRepo.EXPECT().MarkCompleted(ctx, tx, order.ID, "V-1").Return(nil)

	dids, err := d.gw.Purchase(ctx, vendor, order)
	require.NoError(t, err)
	require.Len(t, dids, 2)
	assert.Equal(t, order.ID, dids[0].OrderID)
	assert.Equal(t, "V-1", dids[1].VendorOrderID)
	assert.True(t, dids[0].Rate.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, domain.OrderStageCompleted, order.Stage)
	assert.Empty(t, d.sleeps)
}

func TestDIDGateway_Purchase_RetriesUnavailable(t *testing.T) {
	d := setupGateway(t, 3)
	ctx := context.Background()
	order := debitedOrder("8005550100")
	tx := &mockTx{}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	gomock.InOrder(
		d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, unavailable()),
		d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded),
		d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&ports.VendorPurchaseResult{VendorOrderID: "V-2", Numbers: []string{"8005550100"}}, nil),
	)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Len(1)).Return(nil)
	d.orderRepo.EXPECT().MarkCompleted(ctx, tx, order.ID, "V-2").Return(nil)

	dids, err := d.gw.Purchase(ctx, commioVendor(), order)
	require.NoError(t, err)
	assert.Len(t, dids, 1)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, d.sleeps)
}

func TestDIDGateway_Purchase_RetryCompletesOpenedVendorOrder(t *testing.T) {
	d := setupGateway(t, 3)
	ctx := context.Background()
	order := debitedOrder("8005550100")
	tx := &mockTx{}

	opened := &ports.VendorError{Vendor: "Commio", StatusCode: http.StatusServiceUnavailable, Temporary: true,
		Err: errors.New("complete timed out"), VendorOrderID: "V-7"}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	gomock.InOrder(
		d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), ports.VendorPurchaseRequest{
			Reference: "req-42",
			Numbers:   []string{"8005550100"},
		}).Return(nil, opened),
		d.orderRepo.EXPECT().SetVendorOrderID(ctx, order.ID, "V-7").Return(nil),
		d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), ports.VendorPurchaseRequest{
			Reference:     "req-42",
			Numbers:       []string{"8005550100"},
			VendorOrderID: "V-7",
		}).Return(&ports.VendorPurchaseResult{VendorOrderID: "V-7", Numbers: []string{"8005550100"}}, nil),
	)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Len(1)).Return(nil)
	d.orderRepo.EXPECT().MarkCompleted(ctx, tx, order.ID, "V-7").Return(nil)

	_, err := d.gw.Purchase(ctx, commioVendor(), order)
	require.NoError(t, err)
	assert.Equal(t, "V-7", order.VendorOrderID)
}

func TestDIDGateway_Purchase_ResumeUsesStoredVendorOrder(t *testing.T) {
	d := setupGateway(t, 1)
	ctx := context.Background()
	order := debitedOrder("8005550100")
	order.VendorOrderID = "V-8"
	tx := &mockTx{}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), ports.VendorPurchaseRequest{
		Reference:     "req-42",
		Numbers:       []string{"8005550100"},
		VendorOrderID: "V-8",
	}).Return(&ports.VendorPurchaseResult{VendorOrderID: "V-8"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Len(1)).Return(nil)
	d.orderRepo.EXPECT().MarkCompleted(ctx, tx, order.ID, "V-8").Return(nil)

	_, err := d.gw.Purchase(ctx, commioVendor(), order)
	require.NoError(t, err)
}

func TestDIDGateway_Purchase_CommioCompleteRetryOpensOneOrder(t *testing.T) {
	var creates, completes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account/12345/origination/order/create":
			creates.Add(1)
			_, _ = w.Write([]byte(`{"id":501,"status":"created"}`))
		case "/account/12345/origination/order/complete/501":
			if completes.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"id":501,"status":"completed","tns":[{"did":"8005550100"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	d := setupGateway(t, 3)
	ctx := context.Background()
	order := debitedOrder("8005550100")
	tx := &mockTx{}
	client := commio.NewClient(config.CommioConfig{BaseURL: srv.URL}, time.Second, zerolog.Nop())

	d.registry.EXPECT().Lookup("Commio").Return(client, true)
	d.orderRepo.EXPECT().SetVendorOrderID(ctx, order.ID, "501").Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Len(1)).Return(nil)
	d.orderRepo.EXPECT().MarkCompleted(ctx, tx, order.ID, "501").Return(nil)

	dids, err := d.gw.Purchase(ctx, commioVendor(), order)
	require.NoError(t, err)
	assert.Len(t, dids, 1)
	assert.Equal(t, int32(1), creates.Load())
	assert.Equal(t, int32(2), completes.Load())
}

func TestDIDGateway_Purchase_AttemptsExhausted(t *testing.T) {
	d := setupGateway(t, 2)
	order := debitedOrder("8005550100")

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, unavailable()).Times(2)

	_, err := d.gw.Purchase(context.Background(), commioVendor(), order)
	assertAppError(t, err, "TFN_002")
	assert.Len(t, d.sleeps, 1)
	assert.Equal(t, domain.OrderStageDebited, order.Stage)
}

func TestDIDGateway_Purchase_DeclinedNotRetried(t *testing.T) {
	d := setupGateway(t, 5)
	order := debitedOrder("8005550100")

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, declined()).Times(1)

	_, err := d.gw.Purchase(context.Background(), commioVendor(), order)
	assertAppError(t, err, "TFN_002")
	assert.Empty(t, d.sleeps)
}

func TestDIDGateway_Purchase_ShortConfirmation(t *testing.T) {
	d := setupGateway(t, 1)
	order := debitedOrder("8005550100", "8005550101")

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.VendorPurchaseResult{VendorOrderID: "V-3", Numbers: []string{"8005550100"}}, nil)

	_, err := d.gw.Purchase(context.Background(), commioVendor(), order)
	assertAppError(t, err, "TFN_002")
}

func TestDIDGateway_Purchase_MisconfiguredVendor(t *testing.T) {
	d := setupGateway(t, 1)
	vendor := commioVendor()
	vendor.AccountRef = ""

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)

	_, err := d.gw.Purchase(context.Background(), vendor, debitedOrder("8005550100"))
	assertAppError(t, err, "TFN_002")
}

func TestDIDGateway_Purchase_OrderNotDebited(t *testing.T) {
	d := setupGateway(t, 1)
	order := debitedOrder("8005550100")
	order.Stage = domain.OrderStageCompleted

	_, err := d.gw.Purchase(context.Background(), commioVendor(), order)
	assertAppError(t, err, "SYS_001")
}

func TestDIDGateway_Purchase_RecordFailsIsInternal(t *testing.T) {
	d := setupGateway(t, 1)
	ctx := context.Background()
	order := debitedOrder("8005550100")
	tx := &mockTx{}

	d.registry.EXPECT().Lookup("Commio").Return(d.integration, true)
	d.integration.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.VendorPurchaseResult{VendorOrderID: "V-4"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.didRepo.EXPECT().CreateBatch(ctx, tx, gomock.Any()).Return(errors.New("unique violation"))

	_, err := d.gw.Purchase(ctx, commioVendor(), order)
	assertAppError(t, err, "SYS_001")
	assert.Equal(t, domain.OrderStageDebited, order.Stage)
}

func TestDIDGateway_ListDIDs(t *testing.T) {
	d := setupGateway(t, 1)
	ctx := context.Background()
	accountID := uuid.New()

	d.didRepo.EXPECT().ListByAccount(ctx, accountID, 1, 20).Return([]domain.DIDDetail{{Number: "8005550100"}}, int64(1), nil)

	dids, total, err := d.gw.ListDIDs(ctx, accountID, 1, 20)
	require.NoError(t, err)
	assert.Len(t, dids, 1)
	assert.Equal(t, int64(1), total)
}

func TestSleepCtx_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}
