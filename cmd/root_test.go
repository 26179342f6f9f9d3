package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tailorbook/internal/config"
)

func TestLookupConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"cashbook", "show"}, ""},
		{[]string{"--config", "/etc/tb.yaml", "info"}, "/etc/tb.yaml"},
		{[]string{"info", "-c", "shop.yaml"}, "shop.yaml"},
		{[]string{"--config=/x.yaml"}, "/x.yaml"},
		{[]string{"--", "--config", "ignored"}, ""},
		{[]string{"--config"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lookupConfigFlag(tt.args), tt.args)
	}
}

func TestResolveSession(t *testing.T) {
	cfg = config.NewDefault()
	cfg.Defaults.Operator = "Mama T"

	s, err := resolveSession("")
	require.NoError(t, err)
	assert.Equal(t, "Mama T", s.Operator)

	s, err = resolveSession("  Kunle ")
	require.NoError(t, err)
	assert.Equal(t, "Kunle", s.Operator)
}
