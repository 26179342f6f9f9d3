package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/ledger"
)

func TestRunner_LatestWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	calls := 0
	r := &Runner{
		l: zap.NewNop(),
		build: func(ctx context.Context, rng ledger.DateRange) (*Snapshot, error) {
			calls++
			if calls == 1 {
				close(started)
				// ignores cancellation so the stale result still arrives
				<-release
				return &Snapshot{RunID: "old"}, nil
			}
			return &Snapshot{RunID: "new"}, nil
		},
	}

	oldErr := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), ledger.DateRange{})
		oldErr <- err
	}()
	<-started

	snap, err := r.Run(context.Background(), ledger.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "new", snap.RunID)

	close(release)
	select {
	case err := <-oldErr:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("older run never returned")
	}

	require.NotNil(t, r.Latest())
	assert.Equal(t, "new", r.Latest().RunID)
}

func TestRunner_CancelsPreviousRun(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})

	calls := 0
	r := &Runner{
		l: zap.NewNop(),
		build: func(ctx context.Context, rng ledger.DateRange) (*Snapshot, error) {
			calls++
			if calls == 1 {
				close(started)
				<-ctx.Done()
				close(cancelled)
				return nil, ctx.Err()
			}
			return &Snapshot{RunID: "second"}, nil
		},
	}

	oldErr := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), ledger.DateRange{})
		oldErr <- err
	}()
	<-started

	_, err := r.Run(context.Background(), ledger.DateRange{})
	require.NoError(t, err)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("previous run was not cancelled")
	}
	assert.ErrorIs(t, <-oldErr, ErrSuperseded)
}

func TestRunner_KeepsLastGoodSnapshotOnError(t *testing.T) {
	fail := false
	r := &Runner{
		l: zap.NewNop(),
		build: func(ctx context.Context, rng ledger.DateRange) (*Snapshot, error) {
			if fail {
				return nil, errors.New("database is locked")
			}
			return &Snapshot{RunID: "good"}, nil
		},
	}

	_, err := r.Run(context.Background(), ledger.DateRange{})
	require.NoError(t, err)

	fail = true
	_, err = r.Run(context.Background(), ledger.DateRange{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSuperseded)
	assert.Equal(t, "good", r.Latest().RunID)
}

func TestRunner_WithLedgerService(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	record(t, svc, "income", 4200, "Cash")

	r := NewRunner(svc.Ledger)
	assert.Nil(t, r.Latest())

	snap, err := r.Run(context.Background(), ledger.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, ledger.Balances{Cash: 4200}, snap.Book.Closing)
	assert.Same(t, snap, r.Latest())
}
