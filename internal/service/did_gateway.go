package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// GatewayConfig bounds outbound vendor calls.
type GatewayConfig struct {
	Timeout          time.Duration // per vendor call
	PurchaseAttempts int
	RetryBackoff     time.Duration // doubled after every failed attempt
}

// DIDGatewayImpl implements ports.DIDGateway.
type DIDGatewayImpl struct {
	registry   ports.VendorRegistry
	didRepo    ports.DIDRepository
	orderRepo  ports.OrderRepository
	transactor ports.DBTransactor
	cfg        GatewayConfig
	sleep      func(ctx context.Context, d time.Duration) error
	log        zerolog.Logger
}

// NewDIDGateway creates a new DIDGatewayImpl.
func NewDIDGateway(
	registry ports.VendorRegistry,
	didRepo ports.DIDRepository,
	orderRepo ports.OrderRepository,
	transactor ports.DBTransactor,
	cfg GatewayConfig,
	log zerolog.Logger,
) *DIDGatewayImpl {
	if cfg.PurchaseAttempts < 1 {
		cfg.PurchaseAttempts = 1
	}
	return &DIDGatewayImpl{
		registry:   registry,
		didRepo:    didRepo,
		orderRepo:  orderRepo,
		transactor: transactor,
		cfg:        cfg,
		sleep:      sleepCtx,
		log:        log,
	}
}

// Validate checks that vendor has a registered integration and complete credentials.
func (g *DIDGatewayImpl) Validate(vendor *domain.Vendor) error {
	_, _, err := g.resolve(vendor)
	return err
}

func (g *DIDGatewayImpl) resolve(vendor *domain.Vendor) (ports.VendorIntegration, domain.VendorCredentials, error) {
	integration, ok := g.registry.Lookup(vendor.Name)
	if !ok {
		return nil, domain.VendorCredentials{}, apperror.ErrUnsupportedVendor(vendor.Name)
	}
	creds, err := vendor.Credentials()
	if err != nil {
		return nil, domain.VendorCredentials{}, apperror.ErrVendorMisconfigured(fmt.Errorf("vendor %s: %w", vendor.ID, err))
	}
	return integration, creds, nil
}

// Search asks the vendor for up to q.Quantity available numbers.
func (g *DIDGatewayImpl) Search(ctx context.Context, vendor *domain.Vendor, q ports.SearchQuery) ([]domain.CandidateNumber, error) {
	integration, creds, err := g.resolve(vendor)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := g.withTimeout(ctx)
	defer cancel()

	numbers, err := integration.Search(callCtx, creds, q)
	if err != nil {
		appErr := classifyVendorError(err)
		g.log.Warn().Err(err).
			Str("vendor", vendor.Name).
			Str("error_code", appErr.Code).
			Msg("vendor search failed")
		return nil, appErr
	}
	return numbers, nil
}

// Purchase buys the order's numbers, retrying while the vendor is unavailable.
// The order's request id is sent as the vendor reference. Once the vendor has
// opened an order its id is stored on the TFN order, and every later attempt
// (in this call or a resumed request) completes that vendor order instead of
// opening another. On success the DID rows and the COMPLETED stage are
// written in one transaction.
//
// Vendor failures are returned as PurchaseFailedAfterDebit. A failure to
// record a confirmed purchase is returned as an internal error and leaves
// the order DEBITED.
func (g *DIDGatewayImpl) Purchase(ctx context.Context, vendor *domain.Vendor, order *domain.TFNOrder) ([]domain.DIDDetail, error) {
	if !order.AwaitingPurchase() {
		return nil, apperror.InternalError(fmt.Errorf("order %s is %s, not %s", order.ID, order.Stage, domain.OrderStageDebited))
	}

	integration, creds, err := g.resolve(vendor)
	if err != nil {
		return nil, apperror.ErrPurchaseFailedAfterDebit(err)
	}

	req := ports.VendorPurchaseRequest{
		Reference:     order.RequestID,
		Numbers:       order.Numbers,
		VendorOrderID: order.VendorOrderID,
	}

	var result *ports.VendorPurchaseResult
	for attempt := 1; ; attempt++ {
		result, err = g.purchaseOnce(ctx, integration, creds, req)
		if err == nil {
			break
		}
		g.rememberVendorOrder(ctx, order, &req, err)

		appErr := classifyVendorError(err)
		g.log.Warn().Err(err).
			Str("request_id", order.RequestID).
			Str("vendor", vendor.Name).
			Int("attempt", attempt).
			Str("error_code", appErr.Code).
			Msg("vendor purchase failed")

		if !errors.Is(appErr, apperror.ErrVendorUnavailable(nil)) || attempt >= g.cfg.PurchaseAttempts {
			return nil, apperror.ErrPurchaseFailedAfterDebit(appErr)
		}
		if err := g.sleep(ctx, g.cfg.RetryBackoff<<(attempt-1)); err != nil {
			return nil, apperror.ErrPurchaseFailedAfterDebit(apperror.ErrVendorUnavailable(err))
		}
	}

	numbers := result.Numbers
	if len(numbers) == 0 {
		numbers = order.Numbers
	}
	if len(numbers) != order.Quantity {
		return nil, apperror.ErrPurchaseFailedAfterDebit(
			fmt.Errorf("vendor confirmed %d of %d numbers", len(numbers), order.Quantity))
	}

	dids := g.buildDIDs(order, numbers, result.VendorOrderID)

	dbTx, err := g.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := g.didRepo.CreateBatch(ctx, dbTx, dids); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save dids: %w", err))
	}
	if err := g.orderRepo.MarkCompleted(ctx, dbTx, order.ID, result.VendorOrderID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete order: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	order.Stage = domain.OrderStageCompleted
	order.VendorOrderID = result.VendorOrderID
	order.Numbers = numbers

	g.log.Info().
		Str("request_id", order.RequestID).
		Str("vendor_order_id", result.VendorOrderID).
		Int("count", len(dids)).
		Msg("numbers purchased")

	return dids, nil
}

// rememberVendorOrder keeps the vendor order opened by a failed attempt so the
// next attempt completes it. The id is also persisted for resumed requests.
func (g *DIDGatewayImpl) rememberVendorOrder(ctx context.Context, order *domain.TFNOrder, req *ports.VendorPurchaseRequest, err error) {
	var vErr *ports.VendorError
	if !errors.As(err, &vErr) || vErr.VendorOrderID == "" || vErr.VendorOrderID == req.VendorOrderID {
		return
	}
	req.VendorOrderID = vErr.VendorOrderID
	order.VendorOrderID = vErr.VendorOrderID

	if err := g.orderRepo.SetVendorOrderID(ctx, order.ID, vErr.VendorOrderID); err != nil {
		g.log.Error().Err(err).
			Str("request_id", order.RequestID).
			Str("vendor_order_id", vErr.VendorOrderID).
			Msg("failed to record vendor order id")
	}
}

func (g *DIDGatewayImpl) purchaseOnce(ctx context.Context, integration ports.VendorIntegration, creds domain.VendorCredentials, req ports.VendorPurchaseRequest) (*ports.VendorPurchaseResult, error) {
	callCtx, cancel := g.withTimeout(ctx)
	defer cancel()
	return integration.Purchase(callCtx, creds, req)
}

func (g *DIDGatewayImpl) buildDIDs(order *domain.TFNOrder, numbers []string, vendorOrderID string) []domain.DIDDetail {
	now := time.Now().UTC()
	rate := order.Amount.Div(decimal.NewFromInt(int64(len(numbers)))).Round(4)
	dids := make([]domain.DIDDetail, 0, len(numbers))
	for _, n := range numbers {
		dids = append(dids, domain.DIDDetail{
			ID:            uuid.New(),
			AccountID:     order.AccountID,
			VendorID:      order.VendorID,
			OrderID:       order.ID,
			Number:        n,
			Rate:          rate,
			Currency:      order.Currency,
			VendorOrderID: vendorOrderID,
			CreatedBy:     order.CreatedBy,
			CreatedAt:     now,
		})
	}
	return dids
}

// ListDIDs returns a page of numbers owned by the account.
func (g *DIDGatewayImpl) ListDIDs(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.DIDDetail, int64, error) {
	dids, total, err := g.didRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list dids: %w", err))
	}
	return dids, total, nil
}

func (g *DIDGatewayImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.cfg.Timeout)
}

// classifyVendorError maps a vendor call failure to VendorUnavailable
// (timeout, network, 5xx) or VendorDeclined (any other vendor response).
func classifyVendorError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var vErr *ports.VendorError
	if errors.As(err, &vErr) && !vErr.Temporary {
		return apperror.ErrVendorDeclined(err)
	}
	return apperror.ErrVendorUnavailable(err)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
