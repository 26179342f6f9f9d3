package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hance08/tailorbook/internal/ledger"
	"github.com/hance08/tailorbook/internal/utils"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var Formats = []string{FormatJSON, FormatYAML, FormatCSV}

var csvHeader = []string{
	"date", "kind", "segment", "reconciled",
	"debit_particulars", "debit_voucher", "debit_cash", "debit_bank",
	"credit_particulars", "credit_voucher", "credit_cash", "credit_bank",
}

// ParseFormat normalises a user-supplied format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "yml" {
		f = FormatYAML
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format '%s' (use %s)", s, strings.Join(Formats, ", "))
}

// Write encodes rows to w. JSON and YAML keep amounts in minor units;
// CSV renders them as decimal strings.
func Write(w io.Writer, format string, rows []ledger.Row) error {
	if rows == nil {
		rows = []ledger.Row{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, rows)
	default:
		return fmt.Errorf("unsupported export format '%s'", format)
	}
}

func writeCSV(w io.Writer, rows []ledger.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.DisplayDate(),
			string(row.Kind),
			strconv.Itoa(row.Segment),
			strconv.FormatBool(row.Reconciled),
		}
		record = append(record, sideFields(row.Debit)...)
		record = append(record, sideFields(row.Credit)...)

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func sideFields(s ledger.Side) []string {
	return []string{s.Particulars, s.Voucher, utils.FormatColumn(s.Cash), utils.FormatColumn(s.Bank)}
}
