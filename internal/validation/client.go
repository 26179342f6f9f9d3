package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hance08/tailorbook/internal/constants"
	"github.com/hance08/tailorbook/internal/model"
	"github.com/hance08/tailorbook/internal/store"
)

// ClientLookup is the read side a ClientValidator needs.
// This prevents circular dependency with the service package
type ClientLookup interface {
	GetByName(ctx context.Context, name string) (*model.Client, error)
}

// ClientValidator checks client names, optionally against existing clients.
type ClientValidator struct {
	lookup ClientLookup
}

func NewClientValidator(lookup ClientLookup) *ClientValidator {
	return &ClientValidator{lookup: lookup}
}

// ValidateClientName validates a name without checking existence.
func ValidateClientName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("client name can't be empty")
	}

	if utf8.RuneCountInString(name) > constants.MaxNameLen {
		return fmt.Errorf("client name too long (max %d characters)", constants.MaxNameLen)
	}

	return nil
}

// NewClient returns a validator that also rejects names already in use.
func (v *ClientValidator) NewClient(ctx context.Context) func(string) error {
	return func(name string) error {
		if err := ValidateClientName(name); err != nil {
			return err
		}

		_, err := v.lookup.GetByName(ctx, strings.TrimSpace(name))
		switch {
		case err == nil:
			return fmt.Errorf("client '%s' already exists", strings.TrimSpace(name))
		case errors.Is(err, store.ErrRecordNotFound):
			return nil
		default:
			return fmt.Errorf("failed to check client: %w", err)
		}
	}
}
