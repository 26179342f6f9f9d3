package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/constants"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf(" %s   ", text))
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	style.Println(fmt.Sprintf("# %s   ", text))
}

func Separator() {
	pterm.Println(pterm.Gray("────────────────────────────────────────"))
}

// ByType colours s green for income and red for expense.
func ByType(txType, s string) string {
	switch txType {
	case constants.TypeIncome:
		return pterm.Green(s)
	case constants.TypeExpense:
		return pterm.Red(s)
	default:
		return s
	}
}

// Pending marks cells of the unreconciled period.
func Pending(s string) string {
	return pterm.Yellow(s)
}
