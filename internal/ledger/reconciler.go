package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
)

var epoch = time.Unix(0, 0).UTC()

// Reconcile rebuilds the cash book from every transaction and checkpoint.
//
// Both inputs are copied and sorted by CreatedAt; the caller's slices are
// never reordered. Transactions are partitioned by a single forward cursor:
// a checkpoint owns every transaction created at or before its own CreatedAt
// that an earlier checkpoint has not already claimed. What is left after the
// last checkpoint becomes the unreconciled trailing segment.
//
// Closing figures of reconciled segments come from the checkpoint, not from
// the replay. Disagreements are reported in Cashbook.Drift.
//
// now dates the trailing segment's totals and closing rows and stands in for
// "today" when a segment has no better opening date. Its location is the
// ledger's location.
func Reconcile(txs []*model.Transaction, cps []*model.BalanceCheckpoint, now time.Time) *Cashbook {
	r := &replay{
		txs:  sortTransactions(txs),
		now:  now,
		book: &Cashbook{GeneratedAt: now},
	}

	var (
		running Balances
		prior   time.Time
	)

	for _, cp := range sortCheckpoints(cps) {
		stored := Balances{Cash: cp.CashBalance, Bank: cp.BankBalance}
		segTxs := r.takeUntil(orderKey(cp.CreatedAt))

		closeDate := r.day(cp.LastBalancedDate)
		if closeDate.IsZero() {
			closeDate = r.instantDay(cp.CreatedAt)
		}

		seg := r.emit(segmentBounds{
			reconciled:   true,
			checkpointID: cp.ID,
			opening:      running,
			openDate:     r.openingDate(prior, segTxs),
			txs:          segTxs,
			closeDate:    closeDate,
			closing:      &stored,
		})

		if seg.Replayed != stored {
			r.book.Drift = append(r.book.Drift, Drift{
				Segment:      seg.Index,
				CheckpointID: cp.ID,
				Stored:       stored,
				Replayed:     seg.Replayed,
			})
		}

		running = stored
		prior = cp.LastBalancedDate
	}

	r.book.Closing = running

	if rest := r.takeRest(); len(rest) > 0 {
		seg := r.emit(segmentBounds{
			opening:   running,
			openDate:  r.openingDate(prior, rest),
			txs:       rest,
			closeDate: r.today(),
		})
		r.book.Closing = seg.Closing
	}

	return r.book
}

type replay struct {
	txs    []*model.Transaction
	cursor int
	now    time.Time
	book   *Cashbook
}

type segmentBounds struct {
	reconciled   bool
	checkpointID int64
	opening      Balances
	openDate     time.Time
	txs          []*model.Transaction
	closeDate    time.Time
	closing      *Balances // nil: use the replayed figures
}

func (r *replay) takeUntil(boundary time.Time) []*model.Transaction {
	start := r.cursor
	for r.cursor < len(r.txs) && !orderKey(r.txs[r.cursor].CreatedAt).After(boundary) {
		r.cursor++
	}
	return r.txs[start:r.cursor]
}

func (r *replay) takeRest() []*model.Transaction {
	rest := r.txs[r.cursor:]
	r.cursor = len(r.txs)
	return rest
}

func (r *replay) emit(b segmentBounds) Segment {
	seg := Segment{
		Index:        len(r.book.Segments),
		Reconciled:   b.reconciled,
		CheckpointID: b.checkpointID,
		Opening:      b.opening,
	}

	r.push(seg, Row{
		Kind:  KindOpeningBalance,
		Date:  b.openDate,
		Debit: Side{Particulars: constants.ParticularsBroughtDown, Cash: b.opening.Cash, Bank: b.opening.Bank},
	})

	for _, tx := range b.txs {
		seg.TransactionIDs = append(seg.TransactionIDs, tx.ID)

		side := Side{Particulars: particulars(tx), Voucher: tx.VoucherNo}
		var amount Balances
		if tx.PaymentMethod == constants.MethodBank {
			side.Bank, amount.Bank = tx.Amount, tx.Amount
		} else {
			side.Cash, amount.Cash = tx.Amount, tx.Amount
		}

		row := Row{Kind: KindPosting, Date: r.postingDate(tx), TransactionID: tx.ID}
		if tx.Type == constants.TypeExpense {
			row.Credit = side
			seg.Expense = seg.Expense.Add(amount)
		} else {
			row.Debit = side
			seg.Income = seg.Income.Add(amount)
		}
		r.push(seg, row)
	}

	debitTotal := seg.Opening.Add(seg.Income)
	r.push(seg, Row{
		Kind:   KindPeriodTotals,
		Date:   b.closeDate,
		Debit:  Side{Particulars: constants.ParticularsTotal, Cash: debitTotal.Cash, Bank: debitTotal.Bank},
		Credit: Side{Particulars: constants.ParticularsTotal, Cash: seg.Expense.Cash, Bank: seg.Expense.Bank},
	})

	seg.Replayed = debitTotal.Sub(seg.Expense)
	seg.Closing = seg.Replayed
	if b.closing != nil {
		seg.Closing = *b.closing
	}

	r.push(seg, Row{
		Kind:  KindClosingBalance,
		Date:  b.closeDate,
		Debit: Side{Particulars: constants.ParticularsCarriedDown, Cash: seg.Closing.Cash, Bank: seg.Closing.Bank},
	})

	r.book.Segments = append(r.book.Segments, seg)
	return seg
}

func (r *replay) push(seg Segment, row Row) {
	row.Reconciled = seg.Reconciled
	row.Segment = seg.Index
	r.book.Rows = append(r.book.Rows, row)
}

// openingDate is the day after the previous balancing date. The first
// segment opens on its first transaction's date, or today without one.
func (r *replay) openingDate(prior time.Time, txs []*model.Transaction) time.Time {
	if !prior.IsZero() {
		return r.day(prior).AddDate(0, 0, 1)
	}
	if len(txs) > 0 {
		if d := r.postingDate(txs[0]); !d.IsZero() {
			return d
		}
	}
	return r.today()
}

func (r *replay) postingDate(tx *model.Transaction) time.Time {
	if !tx.Date.IsZero() {
		return r.day(tx.Date)
	}
	return r.instantDay(tx.CreatedAt)
}

func (r *replay) today() time.Time {
	return r.instantDay(r.now)
}

// day keeps the calendar date of a conceptual date, placed in the ledger location.
func (r *replay) day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.now.Location())
}

// instantDay is the ledger-local calendar date of a system timestamp.
func (r *replay) instantDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return r.day(t.In(r.now.Location()))
}

func particulars(tx *model.Transaction) string {
	if tx.ClientName == "" {
		return tx.Description
	}
	return fmt.Sprintf("%s (%s)", tx.Description, tx.ClientName)
}

// orderKey maps a missing timestamp to the Unix epoch.
func orderKey(t time.Time) time.Time {
	if t.IsZero() || t.Before(epoch) {
		return epoch
	}
	return t
}

func sortTransactions(in []*model.Transaction) []*model.Transaction {
	out := make([]*model.Transaction, 0, len(in))
	for _, tx := range in {
		if tx != nil {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := orderKey(out[i].CreatedAt), orderKey(out[j].CreatedAt)
		if !ki.Equal(kj) {
			return ki.Before(kj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortCheckpoints(in []*model.BalanceCheckpoint) []*model.BalanceCheckpoint {
	out := make([]*model.BalanceCheckpoint, 0, len(in))
	for _, cp := range in {
		if cp != nil {
			out = append(out, cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := orderKey(out[i].CreatedAt), orderKey(out[j].CreatedAt)
		if !ki.Equal(kj) {
			return ki.Before(kj)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
