package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/craftledger/etsyprofit/internal/engine"
)

// ImportXLSX reads an Etsy XLSX export. The header row is located by
// scanning the first sheet for a row that resolves at least the date and
// amount columns, which skips the preamble rows some exports carry above
// the table.
func ImportXLSX(r io.Reader, opts engine.Options) (*engine.ParsedData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	headerIdx := -1
	var headers []string
	for i, row := range rows {
		cols := engine.ResolveColumns(row, opts.ExtraColumns)
		if cols.Date != "" && cols.Amount != "" {
			headerIdx = i
			headers = make([]string, len(row))
			for j, cell := range row {
				headers[j] = strings.TrimSpace(cell)
			}
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("could not find a header row with date and amount columns")
	}

	var records []map[string]string
	for _, row := range rows[headerIdx+1:] {
		record := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(row) {
				record[h] = row[j]
			}
		}
		records = append(records, record)
	}

	return engine.Parse(headers, records, opts), nil
}
