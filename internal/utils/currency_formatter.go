package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hance08/tailorbook/internal/constants"
)

// FormatFromMinor renders minor units (kobo, cents) as a fixed two-digit amount.
func FormatFromMinor(minor int64) string {
	return decimal.New(minor, -constants.MinorDigits).StringFixed(constants.MinorDigits)
}

// FormatWithSymbol is FormatFromMinor prefixed with a currency symbol, e.g. "₦1500.00".
func FormatWithSymbol(symbol string, minor int64) string {
	if minor < 0 {
		return "-" + symbol + FormatFromMinor(-minor)
	}
	return symbol + FormatFromMinor(minor)
}

// FormatColumn renders a ledger cell; zero amounts are left blank.
func FormatColumn(minor int64) string {
	if minor == 0 {
		return ""
	}
	return FormatFromMinor(minor)
}

// ParseToMinor converts "150", "150.5" or "1,500.50" to minor units.
// Negative amounts and more than two decimal places are rejected.
func ParseToMinor(amountStr string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if clean == "" {
		return 0, fmt.Errorf("amount is required")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %s", amountStr)
	}

	scaled := d.Shift(constants.MinorDigits)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("amount has more than %d decimal places: %s", constants.MinorDigits, amountStr)
	}

	if !scaled.LessThanOrEqual(decimal.NewFromInt(constants.MaxSafeMinor)) {
		return 0, fmt.Errorf("amount is too large: %s", amountStr)
	}

	return scaled.IntPart(), nil
}
