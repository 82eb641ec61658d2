package engine

import (
	"regexp"
	"strconv"
)

var (
	amountJunkRe  = regexp.MustCompile(`[^0-9.\-]`)
	orderNumberRe = regexp.MustCompile(`(?i)(?:Order\s*#?\s*|#)(\d{10,})`)
)

// ParseAmount converts a currency-formatted cell to a number. Everything
// that is not a digit, dot or minus is stripped first; whatever cannot be
// parsed after that becomes 0. Dirty exports are tolerated, never rejected.
func ParseAmount(value string) float64 {
	cleaned := amountJunkRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// ExtractOrderNumber pulls an order identifier out of free text. Etsy order
// numbers are runs of 10+ digits, usually behind "Order #". Returns ""
// when the text carries no identifier.
func ExtractOrderNumber(info string) string {
	m := orderNumberRe.FindStringSubmatch(info)
	if m == nil {
		return ""
	}
	return m[1]
}

// NormalizeRow converts one raw row into a Transaction using the resolved
// columns. The second return value is false for blank rows (no date and a
// zero amount), which carry no data and are dropped.
func NormalizeRow(row map[string]string, cols ColumnMap) (Transaction, bool) {
	get := func(col string) string {
		if col == "" {
			return ""
		}
		return row[col]
	}

	curr := get(cols.Currency)
	if curr == "" {
		curr = "USD"
	}

	info := get(cols.Info)
	tx := Transaction{
		Date:         get(cols.Date),
		Type:         get(cols.Type),
		Title:        get(cols.Title),
		Info:         info,
		Currency:     curr,
		Amount:       ParseAmount(get(cols.Amount)),
		FeesAndTaxes: ParseAmount(get(cols.FeesAndTaxes)),
		Net:          ParseAmount(get(cols.Net)),
		OrderNumber:  ExtractOrderNumber(info),
	}

	if tx.Date == "" && tx.Amount == 0 {
		return Transaction{}, false
	}
	return tx, true
}
