package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hance08/tailorbook/internal/config"
	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/ledger"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
)

type LedgerService struct {
	repo   store.Repository
	config *config.Config
	l      *zap.Logger
	now    func() time.Time
}

func NewLedgerService(repo store.Repository, cfg *config.Config, l *zap.Logger, now func() time.Time) *LedgerService {
	return &LedgerService{repo: repo, config: cfg, l: l, now: now}
}

// Books is one read of both source streams.
type Books struct {
	Transactions      []*model.Transaction
	Checkpoints       []*model.BalanceCheckpoint
	LastTransactionID int64
	LastCheckpointID  int64
}

// Snapshot is the immutable output of one ledger run.
type Snapshot struct {
	RunID string
	Book  *ledger.Cashbook
	Range ledger.DateRange
	Rows  []ledger.Row // Book.Rows narrowed to Range

	TransactionCount  int
	CheckpointCount   int
	LastTransactionID int64
	LastCheckpointID  int64
}

// BalancePlan is the checkpoint a "balance the book" would write.
type BalancePlan struct {
	Segment           ledger.Segment
	PrevBalancedDate  time.Time
	PrevCheckpointID  int64
	LastTransactionID int64
}

// Load fetches transactions and checkpoints concurrently and returns once
// both reads have completed.
func (ls *LedgerService) Load(ctx context.Context) (*Books, error) {
	var books Books

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := ls.repo.ListTransactions(gctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		books.Transactions = txs
		return nil
	})
	g.Go(func() error {
		cps, err := ls.repo.ListCheckpoints(gctx)
		if err != nil {
			return fmt.Errorf("failed to load checkpoints: %w", err)
		}
		books.Checkpoints = cps
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, tx := range books.Transactions {
		if tx.ID > books.LastTransactionID {
			books.LastTransactionID = tx.ID
		}
	}
	for _, cp := range books.Checkpoints {
		if cp.ID > books.LastCheckpointID {
			books.LastCheckpointID = cp.ID
		}
	}

	return &books, nil
}

// Build loads the books, reconciles them and narrows the rows to rng.
func (ls *LedgerService) Build(ctx context.Context, rng ledger.DateRange) (*Snapshot, error) {
	snap, _, err := ls.build(ctx, rng)
	return snap, err
}

func (ls *LedgerService) build(ctx context.Context, rng ledger.DateRange) (*Snapshot, *Books, error) {
	books, err := ls.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	runID := uuid.NewString()
	book := ledger.Reconcile(books.Transactions, books.Checkpoints, ls.now())

	ls.l.Debug("ledger rebuilt",
		zap.String("run_id", runID),
		zap.Int("transactions", len(books.Transactions)),
		zap.Int("checkpoints", len(books.Checkpoints)),
		zap.Int("segments", len(book.Segments)))

	if ls.config == nil || ls.config.Ledger.WarnOnDrift {
		for _, d := range book.Drift {
			diff := d.Difference()
			ls.l.Warn("checkpoint disagrees with replay",
				zap.String("run_id", runID),
				zap.Int64("checkpoint_id", d.CheckpointID),
				zap.Int64("cash_difference", diff.Cash),
				zap.Int64("bank_difference", diff.Bank))
		}
	}

	return &Snapshot{
		RunID:             runID,
		Book:              book,
		Range:             rng,
		Rows:              ledger.FilterByDate(book.Rows, rng),
		TransactionCount:  len(books.Transactions),
		CheckpointCount:   len(books.Checkpoints),
		LastTransactionID: books.LastTransactionID,
		LastCheckpointID:  books.LastCheckpointID,
	}, books, nil
}

// PlanCheckpoint computes the closing figures of the unreconciled segment.
// It returns ErrNothingToBalance when that segment is empty.
func (ls *LedgerService) PlanCheckpoint(ctx context.Context) (*BalancePlan, error) {
	snap, books, err := ls.build(ctx, ledger.DateRange{})
	if err != nil {
		return nil, err
	}

	seg, ok := snap.Book.Unreconciled()
	if !ok {
		return nil, ErrNothingToBalance
	}

	plan := &BalancePlan{
		Segment:           seg,
		PrevCheckpointID:  snap.LastCheckpointID,
		LastTransactionID: snap.LastTransactionID,
	}

	for _, cp := range books.Checkpoints {
		if cp.ID == plan.PrevCheckpointID {
			plan.PrevBalancedDate = cp.LastBalancedDate
		}
	}

	return plan, nil
}

// CommitCheckpoint writes the checkpoint described by plan, balanced up to
// the conceptual date balancedOn (zero means today). The store rejects the
// write with store.ErrStaleCheckpoint when the books moved since the plan.
func (ls *LedgerService) CommitCheckpoint(ctx context.Context, session model.Session, plan *BalancePlan, balancedOn time.Time) (*model.BalanceCheckpoint, error) {
	if err := checkSession(session); err != nil {
		return nil, err
	}
	if plan == nil || len(plan.Segment.TransactionIDs) == 0 {
		return nil, ErrNothingToBalance
	}

	if balancedOn.IsZero() {
		balancedOn = today(ls.now)
	}
	if !plan.PrevBalancedDate.IsZero() && balancedOn.Before(plan.PrevBalancedDate) {
		return nil, fmt.Errorf("%w: %s is before the previous balance on %s", ErrInvalidBalanceDate,
			balancedOn.Format(constants.DateFormat), plan.PrevBalancedDate.Format(constants.DateFormat))
	}

	cp, err := ls.repo.CreateCheckpoint(ctx, model.CheckpointInput{
		CashBalance:       plan.Segment.Closing.Cash,
		BankBalance:       plan.Segment.Closing.Bank,
		LastBalancedDate:  balancedOn,
		CreatedBy:         session.Operator,
		PrevCheckpointID:  plan.PrevCheckpointID,
		LastTransactionID: plan.LastTransactionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to balance the book: %w", err)
	}

	ls.l.Info("book balanced",
		zap.Int64("checkpoint_id", cp.ID),
		zap.Int64("cash_balance", cp.CashBalance),
		zap.Int64("bank_balance", cp.BankBalance),
		zap.Int("transactions", len(plan.Segment.TransactionIDs)),
		zap.String("operator", session.Operator))

	return cp, nil
}

// CreateCheckpoint plans and commits in one step.
func (ls *LedgerService) CreateCheckpoint(ctx context.Context, session model.Session, balancedOn time.Time) (*model.BalanceCheckpoint, error) {
	if err := checkSession(session); err != nil {
		return nil, err
	}

	plan, err := ls.PlanCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	return ls.CommitCheckpoint(ctx, session, plan, balancedOn)
}

// ListCheckpoints returns checkpoints oldest first.
func (ls *LedgerService) ListCheckpoints(ctx context.Context) ([]*model.BalanceCheckpoint, error) {
	cps, err := ls.repo.ListCheckpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoints: %w", err)
	}

	sort.SliceStable(cps, func(i, j int) bool {
		if !cps[i].CreatedAt.Equal(cps[j].CreatedAt) {
			return cps[i].CreatedAt.Before(cps[j].CreatedAt)
		}
		return cps[i].ID < cps[j].ID
	})

	return cps, nil
}
