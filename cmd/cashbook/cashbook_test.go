package cashbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tailorbook/internal/ledger"
)

func TestParseRange(t *testing.T) {
	rng, err := parseRange("", "", time.UTC)
	require.NoError(t, err)
	assert.True(t, rng.IsZero())

	rng, err = parseRange("2026-03-01", "2026-03-31", time.UTC)
	require.NoError(t, err)
	require.NotNil(t, rng.Start)
	require.NotNil(t, rng.End)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *rng.End)

	rng, err = parseRange("2026-03-01", "", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, rng.End)

	_, err = parseRange("01/03/2026", "", time.UTC)
	assert.Error(t, err)

	_, err = parseRange("2026-04-01", "2026-03-01", time.UTC)
	assert.Error(t, err)
}

func TestReconciledRows(t *testing.T) {
	rows := []ledger.Row{
		{Kind: ledger.KindPosting, Reconciled: true, TransactionID: 1},
		{Kind: ledger.KindPosting, Reconciled: false, TransactionID: 2},
	}

	got := reconciledRows(rows)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].TransactionID)
}
