package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "NGN", cfg.Defaults.Currency)
	assert.Equal(t, "₦", cfg.Defaults.Symbol)
	assert.True(t, cfg.Ledger.WarnOnDrift)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLocation(t *testing.T) {
	cfg := NewDefault()

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Ledger.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Ledger.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}
