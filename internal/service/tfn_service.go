package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"telco-billing/config"
	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// requestLockTTL bounds how long a crashed instance can block a request id.
const requestLockTTL = 5 * time.Minute

// TfnServiceImpl implements ports.TfnService.
type TfnServiceImpl struct {
	vendors    ports.VendorService
	gateway    ports.DIDGateway
	ledger     ports.WalletLedger
	orderRepo  ports.OrderRepository
	didRepo    ports.DIDRepository
	idempCache ports.IdempotencyCache
	lock       ports.RequestLock
	transactor ports.DBTransactor
	alerts     ports.AlertService
	cfg        config.TFNConfig
	log        zerolog.Logger
}

// NewTfnService creates a new TfnServiceImpl.
func NewTfnService(
	vendors ports.VendorService,
	gateway ports.DIDGateway,
	ledger ports.WalletLedger,
	orderRepo ports.OrderRepository,
	didRepo ports.DIDRepository,
	idempCache ports.IdempotencyCache,
	lock ports.RequestLock,
	transactor ports.DBTransactor,
	alerts ports.AlertService,
	cfg config.TFNConfig,
	log zerolog.Logger,
) *TfnServiceImpl {
	return &TfnServiceImpl{
		vendors:    vendors,
		gateway:    gateway,
		ledger:     ledger,
		orderRepo:  orderRepo,
		didRepo:    didRepo,
		idempCache: idempCache,
		lock:       lock,
		transactor: transactor,
		alerts:     alerts,
		cfg:        cfg,
		log:        log,
	}
}

// SearchTFN searches the active vendor's inventory. No money moves.
func (s *TfnServiceImpl) SearchTFN(ctx context.Context, req ports.SearchTFNRequest) ([]domain.CandidateNumber, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.SearchType) == "" {
		fields["searchType"] = "is required"
	}
	if req.Quantity <= 0 {
		fields["quantity"] = "must be greater than 0"
	}
	if req.NPA < 0 {
		fields["npa"] = "must not be negative"
	}
	if len(fields) > 0 {
		return nil, apperror.ValidationFields(fields)
	}

	vendor, err := s.activeVendor(ctx)
	if err != nil {
		return nil, err
	}

	return s.gateway.Search(ctx, vendor, ports.SearchQuery{
		SearchType: req.SearchType,
		Quantity:   req.Quantity,
		NPA:        req.NPA,
	})
}

// activeVendor returns the vendor used for searches. With several active
// vendors the oldest wins.
func (s *TfnServiceImpl) activeVendor(ctx context.Context) (*domain.Vendor, error) {
	vendors, err := s.vendors.ActiveVendors(ctx)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, apperror.ErrNoActiveVendor()
	}
	if len(vendors) > 1 {
		s.log.Warn().
			Int("active_vendors", len(vendors)).
			Str("vendor_id", vendors[0].ID.String()).
			Msg("multiple active vendors, using the oldest")
	}
	return &vendors[0], nil
}

// PurchaseTFN debits the wallet and buys numbers from the vendor.
//
// Requests are idempotent on RequestID: a completed order is replayed, a
// refunded one is rejected, and one left DEBITED resumes at the vendor call
// without a second debit. When the vendor call fails terminally the debit is
// refunded in the same transaction that marks the order REFUNDED.
func (s *TfnServiceImpl) PurchaseTFN(ctx context.Context, req ports.PurchaseTFNRequest) (*ports.PurchaseResult, error) {
	if err := s.validatePurchase(&req); err != nil {
		return nil, err
	}

	idempKey := domain.BuildOrderIdempotencyKey(req.AccountID, req.RequestID)

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedResult(cached)
	}

	lockToken, err := s.lock.Acquire(ctx, idempKey, requestLockTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("request lock unavailable, relying on order uniqueness")
	} else if lockToken == "" {
		return nil, apperror.ErrRequestInProgress()
	} else {
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx), idempKey, lockToken); err != nil {
				s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to release request lock")
			}
		}()
	}

	// Layer 2: DB order state
	existing, err := s.orderRepo.GetByRequestID(ctx, req.RequestID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find order: %w", err))
	}
	if existing != nil {
		return s.resume(ctx, existing, req, idempKey)
	}

	vendor, err := s.vendors.GetVendor(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, apperror.ErrVendorNotFound()
	}
	if err := s.gateway.Validate(vendor); err != nil {
		return nil, err
	}

	numbers, err := s.selectNumbers(ctx, vendor, req)
	if err != nil {
		return nil, err
	}

	order, err := s.debit(ctx, vendor, req, numbers)
	if err != nil {
		return nil, err
	}

	return s.settle(ctx, vendor, order, idempKey)
}

func (s *TfnServiceImpl) validatePurchase(req *ports.PurchaseTFNRequest) error {
	fields := map[string]string{}
	if req.VendorID == uuid.Nil {
		fields["vendorId"] = "is required"
	}
	if req.AccountID == uuid.Nil {
		fields["accountId"] = "is required"
	}
	if req.Quantity <= 0 {
		fields["didQty"] = "must be greater than 0"
	}
	if !req.Rate.IsPositive() {
		fields["rate"] = "must be greater than 0"
	}
	if len(req.Numbers) > 0 && len(req.Numbers) != req.Quantity {
		fields["numbers"] = "must contain exactly didQty numbers"
	}
	if req.NPA < 0 {
		fields["npa"] = "must not be negative"
	}
	if len(fields) > 0 {
		return apperror.ValidationFields(fields)
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.SearchType == "" {
		req.SearchType = s.cfg.DefaultSearchType
	}
	return nil
}

// resume continues an order found by request id.
func (s *TfnServiceImpl) resume(ctx context.Context, order *domain.TFNOrder, req ports.PurchaseTFNRequest, idempKey string) (*ports.PurchaseResult, error) {
	if order.AccountID != req.AccountID {
		return nil, apperror.ValidationFields(map[string]string{"requestId": "already used by another account"})
	}

	switch order.Stage {
	case domain.OrderStageCompleted:
		dids, err := s.didRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("list order dids: %w", err))
		}
		result := &ports.PurchaseResult{Order: order, DIDs: dids}
		s.cacheResult(ctx, idempKey, result)
		result.Replayed = true
		return result, nil

	case domain.OrderStageRefunded:
		return nil, apperror.ErrOrderAlreadyRefunded()
	}

	s.log.Info().
		Str("request_id", order.RequestID).
		Str("order_id", order.ID.String()).
		Msg("resuming debited order")

	vendor, err := s.vendors.GetVendor(ctx, order.VendorID)
	if err != nil {
		if errors.Is(err, apperror.ErrVendorNotFound()) {
			return nil, s.compensate(context.WithoutCancel(ctx), order, apperror.ErrPurchaseFailedAfterDebit(err))
		}
		return nil, err
	}
	return s.settle(ctx, vendor, order, idempKey)
}

func (s *TfnServiceImpl) selectNumbers(ctx context.Context, vendor *domain.Vendor, req ports.PurchaseTFNRequest) ([]string, error) {
	if len(req.Numbers) > 0 {
		return req.Numbers, nil
	}

	candidates, err := s.gateway.Search(ctx, vendor, ports.SearchQuery{
		SearchType: req.SearchType,
		Quantity:   req.Quantity,
		NPA:        req.NPA,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) < req.Quantity {
		return nil, apperror.ErrInsufficientInventory(req.Quantity, len(candidates))
	}

	numbers := make([]string, 0, req.Quantity)
	for _, c := range candidates[:req.Quantity] {
		numbers = append(numbers, c.Number)
	}
	return numbers, nil
}

// debit takes the money and records the DEBITED order in one transaction.
func (s *TfnServiceImpl) debit(ctx context.Context, vendor *domain.Vendor, req ports.PurchaseTFNRequest, numbers []string) (*domain.TFNOrder, error) {
	amount := req.Rate
	if s.cfg.RatePerNumber {
		amount = req.Rate.Mul(decimal.NewFromInt(int64(req.Quantity)))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.ledger.DebitTx(ctx, dbTx, req.AccountID, amount, domain.DebitMeta{
		PaymentGateway:      vendor.Name,
		PaymentGatewayTxnID: req.RequestID,
		Descriptor:          fmt.Sprintf("TFN purchase: %d number(s)", req.Quantity),
		ReferenceID:         req.RequestID,
		CreatedBy:           req.Actor,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.TFNOrder{
		ID:                 uuid.New(),
		RequestID:          req.RequestID,
		AccountID:          req.AccountID,
		VendorID:           vendor.ID,
		Quantity:           req.Quantity,
		Rate:               req.Rate,
		Amount:             amount,
		Currency:           s.cfg.Currency,
		Numbers:            numbers,
		Stage:              domain.OrderStageDebited,
		DebitTransactionID: txn.ID,
		CreatedBy:          req.Actor,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.orderRepo.Create(ctx, dbTx, order); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrRequestInProgress()
		}
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("request_id", order.RequestID).
		Str("order_id", order.ID.String()).
		Str("account_id", order.AccountID.String()).
		Str("amount", amount.String()).
		Msg("wallet debited for tfn order")

	return order, nil
}

// settle runs the vendor purchase for a DEBITED order. The client going away
// must not abandon an order that has already been paid for.
func (s *TfnServiceImpl) settle(ctx context.Context, vendor *domain.Vendor, order *domain.TFNOrder, idempKey string) (*ports.PurchaseResult, error) {
	pctx := context.WithoutCancel(ctx)

	dids, err := s.gateway.Purchase(pctx, vendor, order)
	if err != nil {
		if errors.Is(err, apperror.ErrPurchaseFailedAfterDebit(nil)) {
			return nil, s.compensate(pctx, order, err)
		}
		if rerr := s.orderRepo.RecordFailure(pctx, order.ID, err.Error()); rerr != nil {
			s.log.Warn().Err(rerr).Str("order_id", order.ID.String()).Msg("failed to record order failure")
		}
		return nil, err
	}

	result := &ports.PurchaseResult{Order: order, DIDs: dids}
	s.cacheResult(pctx, idempKey, result)
	return result, nil
}

// compensate refunds the order's debit and marks it REFUNDED. It always
// returns purchaseErr; when the refund itself fails the order stays DEBITED
// so a retry with the same request id resumes it.
func (s *TfnServiceImpl) compensate(ctx context.Context, order *domain.TFNOrder, purchaseErr error) error {
	reason := purchaseErr.Error()

	refund, err := s.refundOrder(ctx, order, reason)
	if err != nil {
		s.log.Error().Err(err).
			Str("request_id", order.RequestID).
			Str("order_id", order.ID.String()).
			Msg("refund after failed purchase failed")
		if rerr := s.orderRepo.RecordFailure(ctx, order.ID, reason); rerr != nil {
			s.log.Warn().Err(rerr).Str("order_id", order.ID.String()).Msg("failed to record order failure")
		}
		s.alerts.Raise(ctx, domain.Alert{
			Kind:     domain.AlertKindRefundFailed,
			Severity: domain.AlertSeverityCritical,
			Message:  "tfn purchase failed after debit and the refund did not complete",
			Fields:   s.alertFields(order, reason, err.Error()),
		})
		return purchaseErr
	}

	order.Stage = domain.OrderStageRefunded
	order.RefundTransactionID = &refund.ID
	order.FailureReason = reason

	s.alerts.Raise(ctx, domain.Alert{
		Kind:     domain.AlertKindPurchaseRefunded,
		Severity: domain.AlertSeverityWarning,
		Message:  "tfn purchase failed after debit, wallet refunded",
		Fields:   s.alertFields(order, reason, ""),
	})
	return purchaseErr
}

func (s *TfnServiceImpl) refundOrder(ctx context.Context, order *domain.TFNOrder, reason string) (*domain.WalletTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	refund, err := s.ledger.RefundTx(ctx, dbTx, order.DebitTransactionID, reason)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.MarkRefunded(ctx, dbTx, order.ID, refund.ID, reason); err != nil {
		return nil, fmt.Errorf("mark order refunded: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return refund, nil
}

func (s *TfnServiceImpl) alertFields(order *domain.TFNOrder, reason, refundErr string) map[string]string {
	fields := map[string]string{
		"request_id":     order.RequestID,
		"order_id":       order.ID.String(),
		"account_id":     order.AccountID.String(),
		"amount":         order.Amount.String(),
		"debit_tx_id":    order.DebitTransactionID.String(),
		"failure_reason": reason,
	}
	if refundErr != "" {
		fields["refund_error"] = refundErr
	}
	return fields
}

func (s *TfnServiceImpl) cacheResult(ctx context.Context, key string, result *ports.PurchaseResult) {
	respJSON, err := json.Marshal(result)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal purchase result")
		return
	}
	if err := s.idempCache.Set(ctx, key, respJSON, s.cfg.IdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

func (s *TfnServiceImpl) unmarshalCachedResult(data []byte) (*ports.PurchaseResult, error) {
	var result ports.PurchaseResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached result: %w", err))
	}
	result.Replayed = true
	return &result, nil
}
