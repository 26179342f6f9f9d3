package errhandler

import (
	"errors"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/store"
)

// IsInterrupt reports whether the user aborted a survey or huh prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err for the terminal and returns the process exit code.
func HandleError(err error) int {
	switch {
	case err == nil:
		return 0
	case IsInterrupt(err):
		pterm.Warning.Println("Operation Cancelled")
		return 0
	case errors.Is(err, service.ErrNothingToBalance):
		pterm.Info.Println("Nothing to balance: every transaction is already in a balance")
		return 0
	case errors.Is(err, store.ErrStaleCheckpoint):
		pterm.Warning.Println("The book changed while you were balancing. Run the command again.")
		return 1
	default:
		pterm.Error.Println(capitalize(err.Error()))
		return 1
	}
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
