package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/store"
)

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("prompt: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("interrupted by nothing")))
}

func TestHandleError_ExitCodes(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"interrupt", terminal.InterruptErr, 0},
		{"nothing to balance", service.ErrNothingToBalance, 0},
		{"stale", fmt.Errorf("failed to balance the book: %w", store.ErrStaleCheckpoint), 1},
		{"other", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleError(tt.err))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Élan", capitalize("élan"))
}
