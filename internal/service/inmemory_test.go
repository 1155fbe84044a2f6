package service

import (
	"context"
	"sort"
	"sync"

	"telco-billing/internal/core/domain"
	"telco-billing/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memDB is an in-memory stand-in for the billing tables. Balance rows are
// locked per account for the lifetime of the owning memTx, mirroring
// SELECT ... FOR UPDATE. Writes are undone when the tx rolls back.
type memDB struct {
	mu       sync.Mutex
	locks    map[uuid.UUID]*sync.Mutex
	balances map[uuid.UUID]decimal.Decimal
	txns     []domain.WalletTransaction
	orders   map[string]*domain.TFNOrder
	dids     []domain.DIDDetail
}

func newMemDB() *memDB {
	return &memDB{
		locks:    make(map[uuid.UUID]*sync.Mutex),
		balances: make(map[uuid.UUID]decimal.Decimal),
		orders:   make(map[string]*domain.TFNOrder),
	}
}

func (db *memDB) seed(accountID uuid.UUID, amount decimal.Decimal) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.balances[accountID] = amount
	db.locks[accountID] = &sync.Mutex{}
}

func (db *memDB) balance(accountID uuid.UUID) decimal.Decimal {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.balances[accountID]
}

func (db *memDB) countTxns(accountID uuid.UUID, typ domain.TransactionType) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, t := range db.txns {
		if t.AccountID == accountID && t.TransactionType == typ {
			n++
		}
	}
	return n
}

// memTx is the pgx.Tx handed out by memDB.Begin.
type memTx struct {
	pgx.Tx
	db    *memDB
	held  []*sync.Mutex
	undo  []func()
	done  bool
	setMu sync.Mutex
}

func (t *memTx) Commit(_ context.Context) error {
	t.finish(false)
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	t.finish(true)
	return nil
}

func (t *memTx) finish(rollback bool) {
	t.setMu.Lock()
	defer t.setMu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if rollback {
		t.db.mu.Lock()
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
		t.db.mu.Unlock()
	}
	for _, m := range t.held {
		m.Unlock()
	}
}

func (t *memTx) onRollback(fn func()) {
	if t != nil {
		t.undo = append(t.undo, fn)
	}
}

func asMemTx(tx pgx.Tx) *memTx {
	mt, _ := tx.(*memTx)
	return mt
}

// Begin implements ports.DBTransactor.
func (db *memDB) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{db: db}, nil
}

// --- BalanceRepository ---

type memBalanceRepo struct{ db *memDB }

func (r *memBalanceRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (*domain.AccountBalance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	amt, ok := r.db.balances[accountID]
	if !ok {
		return nil, nil
	}
	return &domain.AccountBalance{AccountID: accountID, Amount: amt, Currency: "USD"}, nil
}

func (r *memBalanceRepo) GetByAccountIDForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.AccountBalance, error) {
	r.db.mu.Lock()
	lock, ok := r.db.locks[accountID]
	r.db.mu.Unlock()
	if !ok {
		return nil, nil
	}
	mt := asMemTx(tx)
	alreadyHeld := false
	for _, m := range mt.held {
		if m == lock {
			alreadyHeld = true
		}
	}
	if !alreadyHeld {
		lock.Lock()
		mt.held = append(mt.held, lock)
	}
	return r.GetByAccountID(ctx, accountID)
}

func (r *memBalanceRepo) UpdateAmount(_ context.Context, tx pgx.Tx, accountID uuid.UUID, amount decimal.Decimal) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	prev := r.db.balances[accountID]
	r.db.balances[accountID] = amount
	asMemTx(tx).onRollback(func() { r.db.balances[accountID] = prev })
	return nil
}

// --- WalletTransactionRepository ---

type memTxnRepo struct{ db *memDB }

func (r *memTxnRepo) Create(_ context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.txns = append(r.db.txns, *txn)
	n := len(r.db.txns)
	asMemTx(tx).onRollback(func() { r.db.txns = r.db.txns[:n-1] })
	return nil
}

func (r *memTxnRepo) GetByID(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.WalletTransaction, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.txns {
		if r.db.txns[i].ID == id {
			t := r.db.txns[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTxnRepo) CheckRefundExists(_ context.Context, _ pgx.Tx, originalTxID uuid.UUID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.txns {
		if t.OriginalTransactionID != nil && *t.OriginalTransactionID == originalTxID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTxnRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _, _ int) ([]domain.WalletTransaction, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.WalletTransaction
	for _, t := range r.db.txns {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

// --- OrderRepository ---

type memOrderRepo struct{ db *memDB }

func (r *memOrderRepo) Create(_ context.Context, tx pgx.Tx, order *domain.TFNOrder) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.orders[order.RequestID]; ok {
		return ports.ErrDuplicate
	}
	cp := *order
	r.db.orders[order.RequestID] = &cp
	asMemTx(tx).onRollback(func() { delete(r.db.orders, order.RequestID) })
	return nil
}

func (r *memOrderRepo) GetByRequestID(_ context.Context, requestID string) (*domain.TFNOrder, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[requestID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) find(id uuid.UUID) *domain.TFNOrder {
	for _, o := range r.db.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (r *memOrderRepo) SetVendorOrderID(_ context.Context, id uuid.UUID, vendorOrderID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o := r.find(id); o != nil && o.Stage == domain.OrderStageDebited {
		o.VendorOrderID = vendorOrderID
	}
	return nil
}

func (r *memOrderRepo) MarkCompleted(_ context.Context, tx pgx.Tx, id uuid.UUID, vendorOrderID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o := r.find(id); o != nil && o.Stage == domain.OrderStageDebited {
		o.Stage = domain.OrderStageCompleted
		o.VendorOrderID = vendorOrderID
		asMemTx(tx).onRollback(func() { o.Stage = domain.OrderStageDebited })
	}
	return nil
}

func (r *memOrderRepo) MarkRefunded(_ context.Context, tx pgx.Tx, id uuid.UUID, refundTxID uuid.UUID, reason string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o := r.find(id); o != nil && o.Stage == domain.OrderStageDebited {
		o.Stage = domain.OrderStageRefunded
		o.RefundTransactionID = &refundTxID
		o.FailureReason = reason
		asMemTx(tx).onRollback(func() { o.Stage = domain.OrderStageDebited })
	}
	return nil
}

func (r *memOrderRepo) RecordFailure(_ context.Context, id uuid.UUID, reason string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o := r.find(id); o != nil {
		o.FailureReason = reason
	}
	return nil
}

// --- DIDRepository ---

type memDIDRepo struct{ db *memDB }

func (r *memDIDRepo) CreateBatch(_ context.Context, tx pgx.Tx, dids []domain.DIDDetail) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := len(r.db.dids)
	r.db.dids = append(r.db.dids, dids...)
	asMemTx(tx).onRollback(func() { r.db.dids = r.db.dids[:n] })
	return nil
}

func (r *memDIDRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]domain.DIDDetail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.DIDDetail
	for _, d := range r.db.dids {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *memDIDRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _, _ int) ([]domain.DIDDetail, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.DIDDetail
	for _, d := range r.db.dids {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}
