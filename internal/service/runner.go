package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/ledger"
)

type buildFunc func(ctx context.Context, rng ledger.DateRange) (*Snapshot, error)

// Runner delivers ledger snapshots latest-wins. Starting a run cancels the
// one in flight; a run that finishes after a newer one started is discarded
// with ErrSuperseded and never replaces the published snapshot.
type Runner struct {
	build buildFunc
	l     *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest *Snapshot
}

func NewRunner(ls *LedgerService) *Runner {
	return &Runner{build: ls.Build, l: ls.l}
}

func (r *Runner) Run(ctx context.Context, rng ledger.DateRange) (*Snapshot, error) {
	r.mu.Lock()
	r.seq++
	ticket := r.seq
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	defer cancel()

	snap, err := r.build(runCtx, rng)

	r.mu.Lock()
	defer r.mu.Unlock()

	if ticket != r.seq {
		r.l.Debug("discarding superseded ledger run", zap.Uint64("ticket", ticket), zap.Uint64("latest", r.seq))
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	r.latest = snap
	return snap, nil
}

// Latest returns the most recently published snapshot, or nil.
func (r *Runner) Latest() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}
