package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/ledger"
	"github.com/hance08/tailorbook/internal/ui"
	"github.com/hance08/tailorbook/internal/utils"
)

// CashbookView renders the two-sided cash book: receipts on the left,
// payments on the right, each split into cash and bank columns.
type CashbookView struct {
	Symbol string
}

func NewCashbookView(symbol string) *CashbookView {
	return &CashbookView{Symbol: symbol}
}

// Table builds the table data without printing it. The first two rows are
// the header: sides, then columns.
func (v *CashbookView) Table(rows []ledger.Row) pterm.TableData {
	data := pterm.TableData{
		{"", "DEBIT (Receipts)", "", "", "", "CREDIT (Payments)", "", "", ""},
		{"Date", "Particulars", "V.No", "Cash", "Bank", "Particulars", "V.No", "Cash", "Bank"},
	}

	for i, row := range rows {
		if i > 0 && rows[i-1].Segment != row.Segment {
			data = append(data, make([]string, 9))
		}

		cells := []string{
			row.DisplayDate(),
			row.Debit.Particulars, row.Debit.Voucher, utils.FormatColumn(row.Debit.Cash), utils.FormatColumn(row.Debit.Bank),
			row.Credit.Particulars, row.Credit.Voucher, utils.FormatColumn(row.Credit.Cash), utils.FormatColumn(row.Credit.Bank),
		}

		// opening and closing balances always show both columns
		if row.Kind == ledger.KindOpeningBalance || row.Kind == ledger.KindClosingBalance {
			cells[3] = utils.FormatFromMinor(row.Debit.Cash)
			cells[4] = utils.FormatFromMinor(row.Debit.Bank)
		}

		for j, c := range cells {
			cells[j] = styleCell(row, c)
		}
		data = append(data, cells)
	}

	return data
}

func styleCell(row ledger.Row, c string) string {
	if c == "" {
		return c
	}
	switch {
	case row.Kind == ledger.KindPeriodTotals:
		c = pterm.Bold.Sprint(c)
	case row.Kind == ledger.KindClosingBalance:
		c = pterm.Cyan(c)
	}
	if !row.Reconciled {
		c = ui.Pending(c)
	}
	return c
}

func (v *CashbookView) Render(rows []ledger.Row, book *ledger.Cashbook) error {
	pterm.DefaultSection.Println("Cash Book")

	if len(rows) == 0 {
		pterm.Warning.Println("No entries in this period")
	} else {
		if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(v.Table(rows)).Render(); err != nil {
			return err
		}
	}

	if seg, ok := book.Unreconciled(); ok {
		pterm.Info.Printf("%d transaction(s) not yet balanced (shown in yellow)\n", len(seg.TransactionIDs))
	}

	for _, d := range book.Drift {
		diff := d.Difference()
		pterm.Warning.Printf("Balance #%d disagrees with its entries: cash off by %s, bank off by %s\n",
			d.CheckpointID, utils.FormatWithSymbol(v.Symbol, diff.Cash), utils.FormatWithSymbol(v.Symbol, diff.Bank))
	}

	ui.Separator()
	pterm.Printf("%s %s    %s %s\n",
		pterm.Blue("Cash in hand:"), utils.FormatWithSymbol(v.Symbol, book.Closing.Cash),
		pterm.Blue("Cash at bank:"), utils.FormatWithSymbol(v.Symbol, book.Closing.Bank))

	return nil
}
