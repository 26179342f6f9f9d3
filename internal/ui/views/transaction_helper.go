package views

import (
	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/ui"
	"github.com/hance08/tailorbook/internal/utils"
)

func typeLabel(txType string) string {
	switch txType {
	case constants.TypeIncome:
		return "Income"
	case constants.TypeExpense:
		return "Expense"
	default:
		return txType
	}
}

// signedAmount shows expenses with a leading minus, coloured by type.
func signedAmount(tx *model.Transaction, symbol string) string {
	amount := tx.Amount
	if tx.Type == constants.TypeExpense {
		amount = -amount
	}
	return ui.ByType(tx.Type, utils.FormatWithSymbol(symbol, amount))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func displayDate(tx *model.Transaction) string {
	if tx.Date.IsZero() {
		return "-"
	}
	return tx.Date.Format(constants.DateFormat)
}
