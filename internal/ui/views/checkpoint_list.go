package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/utils"
)

func RenderCheckpointList(cps []*model.BalanceCheckpoint, symbol string) error {
	if len(cps) == 0 {
		pterm.Warning.Println("The book has never been balanced")
		return nil
	}

	pterm.DefaultSection.Println("Balances")

	tableData := pterm.TableData{
		{"#", "Balanced On", "Cash", "Bank", "By", "Recorded At"},
	}
	for _, cp := range cps {
		balancedOn := "-"
		if !cp.LastBalancedDate.IsZero() {
			balancedOn = cp.LastBalancedDate.Format(constants.DateFormat)
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", cp.ID),
			balancedOn,
			utils.FormatWithSymbol(symbol, cp.CashBalance),
			utils.FormatWithSymbol(symbol, cp.BankBalance),
			cp.CreatedBy,
			cp.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d balances\n", len(cps))
	return nil
}
