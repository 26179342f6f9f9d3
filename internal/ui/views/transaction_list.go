package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/ui"
)

type TransactionListView struct {
	Symbol string
}

func NewTransactionListView(symbol string) *TransactionListView {
	return &TransactionListView{Symbol: symbol}
}

func (v *TransactionListView) Render(txs []*model.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Method", "Description", "Client", "Amount"},
	}

	for _, tx := range txs {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			displayDate(tx),
			ui.ByType(tx.Type, typeLabel(tx.Type)),
			tx.PaymentMethod,
			tx.Description,
			orDash(tx.ClientName),
			signedAmount(tx, v.Symbol),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
