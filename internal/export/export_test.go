package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hance08/tailorbook/internal/ledger"
)

func sampleRows() []ledger.Row {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []ledger.Row{
		{Kind: ledger.KindOpeningBalance, Date: d, Reconciled: true,
			Debit: ledger.Side{Particulars: "Balance b/d"}},
		{Kind: ledger.KindPosting, Date: d, Reconciled: true, TransactionID: 7,
			Debit: ledger.Side{Particulars: "Senator suit (Mr Eze)", Voucher: "R-1", Cash: 1500050}},
		{Kind: ledger.KindPosting, Date: d, Reconciled: true, TransactionID: 8,
			Credit: ledger.Side{Particulars: "Lining", Bank: 20000}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"2026-03-01", "Posting", "0", "true",
		"Senator suit (Mr Eze)", "R-1", "15000.50", "",
		"", "", "", "",
	}, records[2])
	assert.Equal(t, "200.00", records[3][11])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRows()))

	var got []ledger.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, int64(1500050), got[1].Debit.Cash)
	assert.Equal(t, int64(8), got[2].TransactionID)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleRows()))
	assert.Contains(t, buf.String(), "particulars: Lining")

	var got []ledger.Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, ledger.KindPosting, got[2].Kind)
	assert.Equal(t, int64(20000), got[2].Credit.Bank)
}

func TestWrite_EmptyAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())

	assert.Error(t, Write(&buf, "xml", nil))
}
