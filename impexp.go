package moneybook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

// This file handles the import/export format: a plain CSV, one
// transaction per row, human readable and easy to merge elsewhere.

var csvHeader = []string{"id", "date", "description", "amount", "type", "classification"}

// ExportCSV writes the collection to w in the import/export format,
// preserving the manual order.
func ExportCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range txs {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Date.String(),
			t.Description,
			t.Amount.String(),
			string(t.Type),
			string(t.Classification),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads transactions from r in the import/export format.
// Every row is validated; a single bad row fails the whole import so a
// partial collection is never adopted.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse import file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	start := 0
	if rows[0][0] == csvHeader[0] {
		start = 1 // skip header row
	}

	var txs []Transaction
	for i, row := range rows[start:] {
		line := start + i + 1
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid id %q: %w", line, row[0], err)
		}
		day, err := date.Parse(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, row[3], err)
		}
		tx := Transaction{
			ID:             id,
			Date:           day,
			Description:    row[2],
			Amount:         amount,
			Type:           Type(row[4]),
			Classification: Classification(row[5]),
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
