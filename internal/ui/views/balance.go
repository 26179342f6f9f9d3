package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/ui"
	"github.com/hance08/tailorbook/internal/utils"
)

// RenderBalancePreview shows the figures a checkpoint is about to freeze.
func RenderBalancePreview(plan *service.BalancePlan, symbol string) error {
	seg := plan.Segment

	pterm.Info.Printf("About to balance %d transaction(s):\n", len(seg.TransactionIDs))

	tableData := pterm.TableData{
		{"", "Cash", "Bank"},
		{"Brought down", utils.FormatWithSymbol(symbol, seg.Opening.Cash), utils.FormatWithSymbol(symbol, seg.Opening.Bank)},
		{"Receipts", pterm.Green(utils.FormatWithSymbol(symbol, seg.Income.Cash)), pterm.Green(utils.FormatWithSymbol(symbol, seg.Income.Bank))},
		{"Payments", pterm.Red(utils.FormatWithSymbol(symbol, seg.Expense.Cash)), pterm.Red(utils.FormatWithSymbol(symbol, seg.Expense.Bank))},
		{pterm.Bold.Sprint("Carried down"), pterm.Bold.Sprint(utils.FormatWithSymbol(symbol, seg.Closing.Cash)), pterm.Bold.Sprint(utils.FormatWithSymbol(symbol, seg.Closing.Bank))},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if !plan.PrevBalancedDate.IsZero() {
		pterm.Info.Printf("Previous balance was on %s\n", plan.PrevBalancedDate.Format(constants.DateFormat))
	}
	pterm.Warning.Println("A balance cannot be edited or removed once saved.")
	return nil
}

func RenderBalanceSuccess(cp *model.BalanceCheckpoint, symbol string) {
	ui.Separator()
	pterm.Success.Printf("Book balanced on %s (balance #%d)\n", cp.LastBalancedDate.Format(constants.DateFormat), cp.ID)
	pterm.Println(fmt.Sprintf("Cash c/d %s, bank c/d %s",
		utils.FormatWithSymbol(symbol, cp.CashBalance), utils.FormatWithSymbol(symbol, cp.BankBalance)))
}
