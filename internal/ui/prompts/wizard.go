package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hance08/tailorbook/internal/config"
	"github.com/hance08/tailorbook/internal/validation"
)

var currencySymbols = map[string]string{
	"NGN": "₦",
	"GHS": "₵",
	"KES": "KSh",
	"USD": "$",
	"GBP": "£",
}

// PromptInitDefaults runs on first use, when no operator is configured.
func PromptInitDefaults(current config.DefaultsConfig) (config.DefaultsConfig, error) {
	out := current
	currency := current.Currency
	if currency == "" {
		currency = "NGN"
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to tailorbook! Who keeps this book?").
				Description("Your name is recorded on every entry and balance you make.").
				Value(&out.Operator).
				Validate(validateRequired("name")),
			huh.NewSelect[string]().
				Title("Currency:").
				Options(
					huh.NewOption("NGN", "NGN"),
					huh.NewOption("GHS", "GHS"),
					huh.NewOption("KES", "KES"),
					huh.NewOption("USD", "USD"),
					huh.NewOption("GBP", "GBP"),
					huh.NewOption("Other", "Other"),
				).
				Value(&currency),
		),
	).Run()
	if err != nil {
		return current, err
	}

	out.Operator = strings.TrimSpace(out.Operator)

	if currency != "Other" {
		out.Currency = currency
		out.Symbol = currencySymbols[currency]
		return out, nil
	}

	var custom string
	err = huh.NewInput().
		Title("Please enter the currency code:").
		Description("Please use the ISO 4217 standard 3-letter currency code.").
		Value(&custom).
		Validate(validation.ValidateCurrency).
		Run()
	if err != nil {
		return current, err
	}

	out.Currency = strings.ToUpper(strings.TrimSpace(custom))
	out.Symbol = out.Currency + " "
	return out, nil
}
