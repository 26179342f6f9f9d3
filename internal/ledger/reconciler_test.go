package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
)

var base = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// at returns the instant T<n>.
func at(n int) time.Time {
	return base.Add(time.Duration(n) * time.Minute)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(id int64, kind string, amount int64, method string, createdAt time.Time) *model.Transaction {
	return &model.Transaction{
		ID:            id,
		Type:          kind,
		Description:   "tx",
		Amount:        amount,
		PaymentMethod: method,
		Date:          day(2026, 3, 2),
		CreatedAt:     createdAt,
	}
}

func cp(id int64, cash, bank int64, balancedOn time.Time, createdAt time.Time) *model.BalanceCheckpoint {
	return &model.BalanceCheckpoint{
		ID:               id,
		CashBalance:      cash,
		BankBalance:      bank,
		LastBalancedDate: balancedOn,
		CreatedAt:        createdAt,
	}
}

func rowKinds(rows []Row) []RowKind {
	kinds := make([]RowKind, len(rows))
	for i, r := range rows {
		kinds[i] = r.Kind
	}
	return kinds
}

func TestReconcile_CheckpointThenTrailing(t *testing.T) {
	now := at(60)
	txs := []*model.Transaction{
		tx(1, constants.TypeIncome, 50, constants.MethodCash, at(5)),
		tx(2, constants.TypeExpense, 20, constants.MethodCash, at(12)),
	}
	cps := []*model.BalanceCheckpoint{cp(1, 100, 0, day(2026, 3, 2), at(10))}

	book := Reconcile(txs, cps, now)

	require.Len(t, book.Segments, 2)

	first := book.Segments[0]
	assert.True(t, first.Reconciled)
	assert.Equal(t, []int64{1}, first.TransactionIDs)
	assert.Equal(t, Balances{}, first.Opening)
	assert.Equal(t, Balances{Cash: 100}, first.Closing, "closing comes from the checkpoint")
	assert.Equal(t, Balances{Cash: 50}, first.Replayed)

	trailing, ok := book.Unreconciled()
	require.True(t, ok)
	assert.Equal(t, []int64{2}, trailing.TransactionIDs)
	assert.Equal(t, Balances{Cash: 100}, trailing.Opening)
	assert.Equal(t, Balances{Cash: 80}, trailing.Closing)
	assert.Equal(t, Balances{Cash: 80}, book.Closing)

	assert.Equal(t, []RowKind{
		KindOpeningBalance, KindPosting, KindPeriodTotals, KindClosingBalance,
		KindOpeningBalance, KindPosting, KindPeriodTotals, KindClosingBalance,
	}, rowKinds(book.Rows))

	for _, r := range book.Rows[:4] {
		assert.True(t, r.Reconciled)
		assert.Equal(t, 0, r.Segment)
	}
	for _, r := range book.Rows[4:] {
		assert.False(t, r.Reconciled)
		assert.Equal(t, 1, r.Segment)
	}

	require.Len(t, book.Drift, 1)
	assert.Equal(t, int64(1), book.Drift[0].CheckpointID)
	assert.Equal(t, Balances{Cash: 50}, book.Drift[0].Difference())
}

func TestReconcile_NoCheckpoints(t *testing.T) {
	txs := []*model.Transaction{
		tx(1, constants.TypeIncome, 30, constants.MethodCash, at(1)),
		tx(2, constants.TypeIncome, 70, constants.MethodCash, at(2)),
	}

	book := Reconcile(txs, nil, at(10))

	require.Len(t, book.Segments, 1)
	seg := book.Segments[0]
	assert.False(t, seg.Reconciled)
	assert.Equal(t, Balances{}, seg.Opening)
	assert.Equal(t, Balances{Cash: 100}, seg.Closing)
	assert.Equal(t, Balances{Cash: 100}, book.Closing)
	assert.Empty(t, book.Drift)

	require.Len(t, book.Rows, 5)
	for _, r := range book.Rows {
		assert.False(t, r.Reconciled)
	}
	assert.Equal(t, int64(0), book.Rows[0].Debit.Cash)
	assert.Equal(t, int64(100), book.Rows[4].Debit.Cash)
}

func TestReconcile_BoundaryBelongsToCheckpoint(t *testing.T) {
	txs := []*model.Transaction{
		tx(1, constants.TypeIncome, 40, constants.MethodCash, at(10)),
		tx(2, constants.TypeIncome, 5, constants.MethodCash, at(11)),
	}
	cps := []*model.BalanceCheckpoint{cp(1, 40, 0, day(2026, 3, 2), at(10))}

	book := Reconcile(txs, cps, at(20))

	require.Len(t, book.Segments, 2)
	assert.Equal(t, []int64{1}, book.Segments[0].TransactionIDs)
	assert.Equal(t, []int64{2}, book.Segments[1].TransactionIDs)
	assert.Empty(t, book.Drift)
}

func TestReconcile_EmptyCheckpointWindow(t *testing.T) {
	cps := []*model.BalanceCheckpoint{
		cp(1, 10, 5, day(2026, 3, 1), at(1)),
		cp(2, 10, 5, day(2026, 3, 2), at(2)),
	}
	txs := []*model.Transaction{
		tx(1, constants.TypeIncome, 10, constants.MethodCash, at(0)),
		tx(2, constants.TypeIncome, 5, constants.MethodBank, at(0)),
	}

	book := Reconcile(txs, cps, at(3))

	require.Len(t, book.Segments, 2)
	empty := book.Segments[1]
	assert.Empty(t, empty.TransactionIDs)
	assert.Equal(t, empty.Opening, empty.Closing)

	rows := book.Rows[len(book.Rows)-3:]
	assert.Equal(t, []RowKind{KindOpeningBalance, KindPeriodTotals, KindClosingBalance}, rowKinds(rows))
	assert.Equal(t, Side{Particulars: constants.ParticularsTotal, Cash: 10, Bank: 5}, rows[1].Debit)
	assert.Equal(t, Side{Particulars: constants.ParticularsTotal}, rows[1].Credit)

	_, ok := book.Unreconciled()
	assert.False(t, ok)
	assert.Equal(t, Balances{Cash: 10, Bank: 5}, book.Closing)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	book := Reconcile(nil, nil, at(0))

	assert.Empty(t, book.Rows)
	assert.Empty(t, book.Segments)
	assert.Equal(t, Balances{}, book.Closing)
}

func TestReconcile_PostingSides(t *testing.T) {
	clientTx := tx(1, constants.TypeIncome, 500, constants.MethodBank, at(1))
	clientTx.Description = "wedding gown"
	clientTx.ClientName = "Chioma"
	clientTx.VoucherNo = "RV-7"

	expense := tx(2, constants.TypeExpense, 120, constants.MethodCash, at(2))
	expense.Description = "thread"

	book := Reconcile([]*model.Transaction{clientTx, expense}, nil, at(3))

	require.Len(t, book.Rows, 5)
	income := book.Rows[1]
	assert.Equal(t, KindPosting, income.Kind)
	assert.Equal(t, int64(1), income.TransactionID)
	assert.Equal(t, Side{Particulars: "wedding gown (Chioma)", Voucher: "RV-7", Bank: 500}, income.Debit)
	assert.Equal(t, Side{}, income.Credit)

	out := book.Rows[2]
	assert.Equal(t, Side{}, out.Debit)
	assert.Equal(t, Side{Particulars: "thread", Cash: 120}, out.Credit)

	totals := book.Rows[3]
	assert.Equal(t, int64(0), totals.Debit.Cash)
	assert.Equal(t, int64(500), totals.Debit.Bank)
	assert.Equal(t, int64(120), totals.Credit.Cash)
	assert.Equal(t, int64(0), totals.Credit.Bank)

	assert.Equal(t, Balances{Cash: -120, Bank: 500}, book.Closing)
}

func TestReconcile_Dates(t *testing.T) {
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC)

	first := tx(1, constants.TypeIncome, 10, constants.MethodCash, at(1))
	first.Date = day(2026, 3, 1)
	late := tx(2, constants.TypeIncome, 10, constants.MethodCash, at(5))
	late.Date = day(2026, 3, 9)

	cps := []*model.BalanceCheckpoint{cp(1, 10, 0, day(2026, 3, 5), at(2))}

	book := Reconcile([]*model.Transaction{first, late}, cps, now)

	require.Len(t, book.Rows, 8)
	assert.Equal(t, "2026-03-01", book.Rows[0].DisplayDate(), "first segment opens on its first transaction")
	assert.Equal(t, "2026-03-05", book.Rows[2].DisplayDate())
	assert.Equal(t, "2026-03-05", book.Rows[3].DisplayDate())
	assert.Equal(t, "2026-03-06", book.Rows[4].DisplayDate(), "next segment opens the day after balancing")
	assert.Equal(t, "2026-03-09", book.Rows[5].DisplayDate())
	assert.Equal(t, "2026-03-20", book.Rows[6].DisplayDate(), "trailing totals are dated today")
	assert.Equal(t, "2026-03-20", book.Rows[7].DisplayDate())
}

func TestReconcile_FirstSegmentWithoutTransactionsOpensToday(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	cps := []*model.BalanceCheckpoint{cp(1, 0, 0, day(2026, 3, 31), at(1))}

	book := Reconcile(nil, cps, now)

	require.Len(t, book.Rows, 3)
	assert.Equal(t, "2026-04-01", book.Rows[0].DisplayDate())
}

func TestReconcile_MissingCreatedAtSortsFirst(t *testing.T) {
	orphan := tx(9, constants.TypeIncome, 7, constants.MethodCash, time.Time{})
	txs := []*model.Transaction{
		tx(1, constants.TypeIncome, 3, constants.MethodCash, at(1)),
		orphan,
	}
	cps := []*model.BalanceCheckpoint{cp(1, 10, 0, day(2026, 3, 2), at(2))}

	book := Reconcile(txs, cps, at(3))

	require.Len(t, book.Segments, 1)
	assert.Equal(t, []int64{9, 1}, book.Segments[0].TransactionIDs)
	assert.Empty(t, book.Drift)
}

func TestReconcile_DoesNotReorderInputs(t *testing.T) {
	txs := []*model.Transaction{
		tx(2, constants.TypeIncome, 1, constants.MethodCash, at(2)),
		tx(1, constants.TypeIncome, 1, constants.MethodCash, at(1)),
	}
	cps := []*model.BalanceCheckpoint{
		cp(2, 2, 0, day(2026, 3, 3), at(3)),
		cp(1, 1, 0, day(2026, 3, 2), at(1)),
	}

	Reconcile(txs, cps, at(4))

	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, int64(2), cps[0].ID)
}

// randomBooks builds a consistent history: every checkpoint stores exactly
// the replayed balances of its window.
func randomBooks(seed int64) ([]*model.Transaction, []*model.BalanceCheckpoint) {
	rng := rand.New(rand.NewSource(seed))

	var (
		txs     []*model.Transaction
		cps     []*model.BalanceCheckpoint
		running Balances
		clock   int
	)

	for i := 0; i < 200; i++ {
		clock++
		if rng.Intn(10) == 0 {
			cps = append(cps, cp(int64(len(cps)+1), running.Cash, running.Bank, base.AddDate(0, 0, len(cps)), at(clock)))
			continue
		}

		kind := constants.TypeIncome
		if rng.Intn(3) == 0 {
			kind = constants.TypeExpense
		}
		method := constants.MethodCash
		if rng.Intn(2) == 0 {
			method = constants.MethodBank
		}
		amount := int64(rng.Intn(10000))

		delta := Balances{}
		if method == constants.MethodBank {
			delta.Bank = amount
		} else {
			delta.Cash = amount
		}
		if kind == constants.TypeExpense {
			running = running.Sub(delta)
		} else {
			running = running.Add(delta)
		}

		txs = append(txs, tx(int64(len(txs)+1), kind, amount, method, at(clock)))
	}

	rng.Shuffle(len(txs), func(i, j int) { txs[i], txs[j] = txs[j], txs[i] })
	rng.Shuffle(len(cps), func(i, j int) { cps[i], cps[j] = cps[j], cps[i] })

	return txs, cps
}

func TestReconcile_Properties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		txs, cps := randomBooks(seed)
		now := at(1000)

		book := Reconcile(txs, cps, now)

		// partition: every transaction in exactly one segment
		seen := make(map[int64]int)
		for _, seg := range book.Segments {
			for _, id := range seg.TransactionIDs {
				seen[id]++
			}
		}
		require.Len(t, seen, len(txs), "seed %d", seed)
		for id, n := range seen {
			assert.Equal(t, 1, n, "seed %d: transaction %d", seed, id)
		}

		// closure: well-formed checkpoints never drift
		assert.Empty(t, book.Drift, "seed %d", seed)
		for i, seg := range book.Segments {
			assert.Equal(t, seg.Opening.Add(seg.Income).Sub(seg.Expense), seg.Closing, "seed %d segment %d", seed, i)
			if i > 0 {
				assert.Equal(t, book.Segments[i-1].Closing, seg.Opening, "seed %d segment %d", seed, i)
			}
		}

		// totals rows match segment figures
		for _, row := range book.Rows {
			if row.Kind != KindPeriodTotals {
				continue
			}
			seg := book.Segments[row.Segment]
			assert.Equal(t, seg.Opening.Add(seg.Income), Balances{Cash: row.Debit.Cash, Bank: row.Debit.Bank})
			assert.Equal(t, seg.Expense, Balances{Cash: row.Credit.Cash, Bank: row.Credit.Bank})
		}

		// idempotence
		again := Reconcile(txs, cps, now)
		assert.Equal(t, book, again, "seed %d", seed)
	}
}
