package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/ui"
)

func RenderTransactionDetail(tx *model.Transaction, symbol string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction #%d", tx.ID)

	recordedAt := "-"
	if !tx.CreatedAt.IsZero() {
		recordedAt = tx.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Date", displayDate(tx)},
		{"Type", ui.ByType(tx.Type, typeLabel(tx.Type))},
		{"Method", tx.PaymentMethod},
		{"Description", tx.Description},
		{"Client", orDash(tx.ClientName)},
		{"Voucher", orDash(tx.VoucherNo)},
		{"Amount", signedAmount(tx, symbol)},
		{"Recorded By", orDash(tx.CreatedBy)},
		{"Recorded At", recordedAt},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}

// RenderTransactionSummary is the short confirmation printed after an add.
func RenderTransactionSummary(tx *model.Transaction, symbol string) error {
	pterm.Success.Printf("Transaction recorded (ID: %d)\n", tx.ID)

	tableData := pterm.TableData{
		{"Date", displayDate(tx)},
		{"Description", tx.Description},
		{"Amount", fmt.Sprintf("%s (%s)", signedAmount(tx, symbol), tx.PaymentMethod)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
