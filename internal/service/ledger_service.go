package service

import (
	"context"
	"fmt"
	"time"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"
	"telco-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.WalletLedger.
type LedgerServiceImpl struct {
	balanceRepo ports.BalanceRepository
	txRepo      ports.WalletTransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	balanceRepo ports.BalanceRepository,
	txRepo ports.WalletTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		balanceRepo: balanceRepo,
		txRepo:      txRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Debit withdraws amount from the account in its own database transaction.
func (s *LedgerServiceImpl) Debit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, meta domain.DebitMeta) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.DebitTx(ctx, dbTx, accountID, amount, meta)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("account_id", accountID.String()).
		Str("amount", amount.String()).
		Msg("wallet debited")

	return txn, nil
}

// DebitTx locks the balance row, checks funds and records the debit inside tx.
// Nothing is written when the balance does not cover amount.
func (s *LedgerServiceImpl) DebitTx(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal, meta domain.DebitMeta) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	balance, err := s.balanceRepo.GetByAccountIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrAccountBalanceNotFound()
	}
	if !balance.Covers(amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	newAmount := balance.Amount.Sub(amount)
	if err := s.balanceRepo.UpdateAmount(ctx, tx, accountID, newAmount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.WalletTransaction{
		ID:                  uuid.New(),
		AccountID:           accountID,
		Amount:              amount,
		BalanceAfter:        newAmount,
		TransactionType:     domain.TransactionTypeDebit,
		PaymentGateway:      meta.PaymentGateway,
		PaymentGatewayTxnID: meta.PaymentGatewayTxnID,
		Descriptor:          meta.Descriptor,
		ReferenceID:         meta.ReferenceID,
		CreatedBy:           meta.CreatedBy,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	return txn, nil
}

// Refund credits a debit back to its account in its own database transaction.
func (s *LedgerServiceImpl) Refund(ctx context.Context, originalTxID uuid.UUID, reason string) (*domain.WalletTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.RefundTx(ctx, dbTx, originalTxID, reason)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("original_tx_id", originalTxID.String()).
		Str("amount", txn.Amount.String()).
		Msg("wallet refunded")

	return txn, nil
}

// RefundTx records a REFUND row for the full amount of originalTxID inside tx.
// A debit can be refunded at most once.
func (s *LedgerServiceImpl) RefundTx(ctx context.Context, tx pgx.Tx, originalTxID uuid.UUID, reason string) (*domain.WalletTransaction, error) {
	orig, err := s.txRepo.GetByID(ctx, tx, originalTxID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find original tx: %w", err))
	}
	if orig == nil {
		return nil, apperror.ErrNotFound("original transaction")
	}
	if !orig.IsRefundable() {
		return nil, apperror.ErrNotRefundable()
	}

	exists, err := s.txRepo.CheckRefundExists(ctx, tx, orig.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check refund exists: %w", err))
	}
	if exists {
		return nil, apperror.ErrAlreadyRefunded()
	}

	balance, err := s.balanceRepo.GetByAccountIDForUpdate(ctx, tx, orig.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrAccountBalanceNotFound()
	}

	newAmount := balance.Amount.Add(orig.Amount)
	if err := s.balanceRepo.UpdateAmount(ctx, tx, orig.AccountID, newAmount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.WalletTransaction{
		ID:                    uuid.New(),
		AccountID:             orig.AccountID,
		Amount:                orig.Amount,
		BalanceAfter:          newAmount,
		TransactionType:       domain.TransactionTypeRefund,
		PaymentGateway:        orig.PaymentGateway,
		Descriptor:            reason,
		ReferenceID:           "REFUND-" + orig.ReferenceID,
		OriginalTransactionID: &orig.ID,
		CreatedBy:             orig.CreatedBy,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create refund tx: %w", err))
	}

	return txn, nil
}

// GetBalance returns the current balance of an account.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*domain.AccountBalance, error) {
	balance, err := s.balanceRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.ErrAccountBalanceNotFound()
	}
	return balance, nil
}

// ListTransactions returns a page of the account's ledger, newest first.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	txns, total, err := s.txRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}
