package validation

import (
	"fmt"
	"strings"
)

// ValidateCurrency checks an ISO 4217 code such as NGN.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. NGN)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}
