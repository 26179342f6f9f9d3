package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hance08/tailorbook/internal/constants"
)

// ValidateTransactionInput checks a transaction before it is written.
func ValidateTransactionInput(in TransactionInput) error {
	if in.Type != constants.TypeIncome && in.Type != constants.TypeExpense {
		return fmt.Errorf("%w: type must be income or expense, got '%s'", ErrInvalidTransaction, in.Type)
	}

	if in.PaymentMethod != constants.MethodCash && in.PaymentMethod != constants.MethodBank {
		return fmt.Errorf("%w: payment method must be Cash or Bank, got '%s'", ErrInvalidTransaction, in.PaymentMethod)
	}

	if in.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidTransaction)
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	if utf8.RuneCountInString(desc) > constants.MaxDescriptionLen {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidTransaction, constants.MaxDescriptionLen)
	}

	return nil
}
