package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptClient asks for a new client's name and an optional phone number.
// validateName usually also rejects names already taken.
func PromptClient(validateName func(string) error) (name, phone string, err error) {
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client name:").
				Value(&name).
				Validate(validateName),
			huh.NewInput().
				Title("Phone (optional):").
				Value(&phone),
		),
	).Run()

	return strings.TrimSpace(name), strings.TrimSpace(phone), err
}
