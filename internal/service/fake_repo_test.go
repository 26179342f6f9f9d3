package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
)

// fakeRepo is an in-memory store.Repository. Every write advances the clock
// by one second, mirroring the strictly increasing created_at of the store.
type fakeRepo struct {
	mu      sync.Mutex
	clock   time.Time
	txs     []*model.Transaction
	cps     []*model.BalanceCheckpoint
	clients []*model.Client

	ListTransactionsFunc func(ctx context.Context) error
	ListCheckpointsFunc  func(ctx context.Context) error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clock: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
}

func (f *fakeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRepo) CreateTransaction(ctx context.Context, tx *model.Transaction) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := *tx
	c.ID = int64(len(f.txs) + 1)
	c.CreatedAt = f.tick()
	f.txs = append(f.txs, &c)

	out := c
	return &out, nil
}

func (f *fakeRepo) GetTransactionByID(ctx context.Context, txID int64) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, tx := range f.txs {
		if tx.ID == txID {
			c := *tx
			return &c, nil
		}
	}
	return nil, fmt.Errorf("transaction with ID %d: %w", txID, store.ErrRecordNotFound)
}

func (f *fakeRepo) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	if f.ListTransactionsFunc != nil {
		if err := f.ListTransactionsFunc(ctx); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*model.Transaction, len(f.txs))
	for i, tx := range f.txs {
		c := *tx
		out[i] = &c
	}
	return out, nil
}

func (f *fakeRepo) ListRecentTransactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	all, err := f.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	var out []*model.Transaction
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeRepo) CreateCheckpoint(ctx context.Context, in model.CheckpointInput) (*model.BalanceCheckpoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if int64(len(f.cps)) != in.PrevCheckpointID || int64(len(f.txs)) != in.LastTransactionID {
		return nil, store.ErrStaleCheckpoint
	}

	cp := &model.BalanceCheckpoint{
		ID:               int64(len(f.cps) + 1),
		CashBalance:      in.CashBalance,
		BankBalance:      in.BankBalance,
		LastBalancedDate: in.LastBalancedDate,
		CreatedAt:        f.tick(),
		CreatedBy:        in.CreatedBy,
	}
	f.cps = append(f.cps, cp)

	out := *cp
	return &out, nil
}

func (f *fakeRepo) ListCheckpoints(ctx context.Context) ([]*model.BalanceCheckpoint, error) {
	if f.ListCheckpointsFunc != nil {
		if err := f.ListCheckpointsFunc(ctx); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*model.BalanceCheckpoint, len(f.cps))
	for i, cp := range f.cps {
		c := *cp
		out[i] = &c
	}
	return out, nil
}

func (f *fakeRepo) CreateClient(ctx context.Context, name, phone string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.clients {
		if c.Name == name {
			return 0, store.ErrClientExists
		}
	}
	id := int64(len(f.clients) + 1)
	f.clients = append(f.clients, &model.Client{ID: id, Name: name, Phone: phone, CreatedAt: f.clock})
	return id, nil
}

func (f *fakeRepo) GetClientByID(ctx context.Context, id int64) (*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.clients {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (f *fakeRepo) GetClientByName(ctx context.Context, name string) (*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.clients {
		if c.Name == name {
			out := *c
			return &out, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (f *fakeRepo) ListClients(ctx context.Context) ([]*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*model.Client, len(f.clients))
	copy(out, f.clients)
	return out, nil
}

func (f *fakeRepo) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) Close() error {
	return nil
}
