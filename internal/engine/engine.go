// Package engine turns a loosely schematized transaction export into
// structured per-order financial records and a profit summary. The pipeline
// is a pure, synchronous fold: resolve columns once on the header row,
// normalize and classify each row, aggregate rows into orders, then reduce
// orders into a summary. Row content never produces an error; bad cells
// coerce to zero and blank rows are dropped.
package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Options tunes parsing without changing classification semantics.
type Options struct {
	// ExtraColumns appends accepted header name variants per canonical
	// field, after the built-in ones. Keys must be canonical field names
	// (see ColumnFields).
	ExtraColumns map[string][]string
}

// Parse runs the full pipeline over an already tabularized export. rows map
// header names to cell values, keyed exactly as headers is spelled.
func Parse(headers []string, rows []map[string]string, opts Options) *ParsedData {
	cols := ResolveColumns(headers, opts.ExtraColumns)

	var txs []Transaction
	for _, row := range rows {
		tx, ok := NormalizeRow(row, cols)
		if !ok {
			continue
		}
		txs = append(txs, tx)
	}

	orders := AggregateOrders(txs)
	summary := Summarize(orders, txs)

	return &ParsedData{
		Orders:          orders,
		Summary:         summary,
		RawTransactions: txs,
	}
}

// ParseCSV reads a delimited export and runs the pipeline. Headers are
// trimmed, blank lines skipped and ragged rows tolerated. The only error
// condition is a structurally unreadable table; row content never fails.
func ParseCSV(r io.Reader, opts Options) (*ParsedData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited table: %w", err)
	}
	if len(records) == 0 {
		return Parse(nil, nil, opts), nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return Parse(headers, rows, opts), nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
