package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tailorbook/internal/constants"
)

// TransactionInput represents user input for recording a transaction
type TransactionInput struct {
	Type          string
	Description   string
	Amount        int64
	PaymentMethod string
	Date          time.Time // zero means today
	ClientName    string    // optional
	VoucherNo     string
}

// ParseType accepts "income"/"in" and "expense"/"out" in any case.
func ParseType(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "i":
		return constants.TypeIncome, nil
	case "expense", "out", "e":
		return constants.TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type '%s' (must be income or expense)", s)
	}
}

// ParseMethod accepts "cash" and "bank" in any case.
func ParseMethod(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "c":
		return constants.MethodCash, nil
	case "bank", "b", "transfer", "pos":
		return constants.MethodBank, nil
	default:
		return "", fmt.Errorf("unknown payment method '%s' (must be Cash or Bank)", s)
	}
}
