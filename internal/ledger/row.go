package ledger

import (
	"time"

	"github.com/hance08/tailorbook/internal/constants"
)

type RowKind string

const (
	KindOpeningBalance RowKind = "OpeningBalance"
	KindPosting        RowKind = "Posting"
	KindPeriodTotals   RowKind = "PeriodTotals"
	KindClosingBalance RowKind = "ClosingBalance"
)

// Side is one half of a cash book row: debit (receipts) or credit (payments).
type Side struct {
	Particulars string `json:"particulars" yaml:"particulars"`
	Voucher     string `json:"voucher" yaml:"voucher"`
	Cash        int64  `json:"cash" yaml:"cash"`
	Bank        int64  `json:"bank" yaml:"bank"`
}

type Row struct {
	Kind          RowKind   `json:"kind" yaml:"kind"`
	Date          time.Time `json:"date" yaml:"date"`
	Debit         Side      `json:"debit" yaml:"debit"`
	Credit        Side      `json:"credit" yaml:"credit"`
	Reconciled    bool      `json:"reconciled" yaml:"reconciled"`
	Segment       int       `json:"segment" yaml:"segment"`
	TransactionID int64     `json:"transaction_id,omitempty" yaml:"transaction_id,omitempty"`
}

func (r Row) DisplayDate() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(constants.DateFormat)
}

// Balances holds a cash and a bank figure in minor units.
type Balances struct {
	Cash int64 `json:"cash" yaml:"cash"`
	Bank int64 `json:"bank" yaml:"bank"`
}

func (b Balances) Add(o Balances) Balances {
	return Balances{Cash: b.Cash + o.Cash, Bank: b.Bank + o.Bank}
}

func (b Balances) Sub(o Balances) Balances {
	return Balances{Cash: b.Cash - o.Cash, Bank: b.Bank - o.Bank}
}

// Segment summarises the transactions between two consecutive checkpoints,
// or between the last checkpoint and now when Reconciled is false.
type Segment struct {
	Index          int
	Reconciled     bool
	CheckpointID   int64
	Opening        Balances
	Income         Balances
	Expense        Balances
	Replayed       Balances // opening + income - expense
	Closing        Balances // what the closing row shows
	TransactionIDs []int64
}

// Drift reports a checkpoint whose stored balances disagree with the replay.
type Drift struct {
	Segment      int
	CheckpointID int64
	Stored       Balances
	Replayed     Balances
}

func (d Drift) Difference() Balances {
	return d.Stored.Sub(d.Replayed)
}

// Cashbook is the immutable result of one reconciliation run.
type Cashbook struct {
	Rows        []Row
	Segments    []Segment
	Closing     Balances
	Drift       []Drift
	GeneratedAt time.Time
}

// Unreconciled returns the trailing open segment, if it has any transactions.
func (c *Cashbook) Unreconciled() (Segment, bool) {
	if len(c.Segments) == 0 {
		return Segment{}, false
	}
	last := c.Segments[len(c.Segments)-1]
	if last.Reconciled {
		return Segment{}, false
	}
	return last, true
}
