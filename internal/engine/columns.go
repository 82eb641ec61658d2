package engine

import "strings"

// ColumnMap holds the resolved header name for each canonical field.
// An empty string means the export has no such column, which is a valid
// state: older exports lack the net and fee columns entirely.
type ColumnMap struct {
	Date         string
	Type         string
	Title        string
	Info         string
	Currency     string
	Amount       string
	FeesAndTaxes string
	Net          string
}

// columnVariants lists the accepted header names per canonical field, in
// priority order. Etsy has shipped several CSV layouts over the years and
// the same field goes by different names across them.
var columnVariants = map[string][]string{
	"date":         {"Date", "date", "Transaction Date"},
	"type":         {"Type", "type", "Transaction Type"},
	"title":        {"Title", "title", "Description"},
	"info":         {"Info", "info", "Additional Info", "Details"},
	"currency":     {"Currency", "currency"},
	"amount":       {"Amount", "amount", "Sale Amount"},
	"feesAndTaxes": {"Fees & Taxes", "Fees and Taxes", "fees", "Fee"},
	"net":          {"Net", "net", "Net Amount"},
}

// ColumnFields returns the canonical field names a config file may extend.
func ColumnFields() []string {
	return []string{"date", "type", "title", "info", "currency", "amount", "feesAndTaxes", "net"}
}

// IsColumnField reports whether name is a known canonical field.
func IsColumnField(name string) bool {
	_, ok := columnVariants[name]
	return ok
}

// findColumn returns the actual header matching the first variant that
// appears among the headers. Matching is case-insensitive on trimmed text,
// and variant priority wins over header position.
func findColumn(headers []string, variants []string) string {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, v := range variants {
		want := strings.ToLower(strings.TrimSpace(v))
		for i, h := range lowered {
			if h == want {
				return headers[i]
			}
		}
	}
	return ""
}

// ResolveColumns maps the literal header row of an export to canonical
// fields. extra appends user-configured variants after the built-in ones.
func ResolveColumns(headers []string, extra map[string][]string) ColumnMap {
	resolve := func(field string) string {
		variants := columnVariants[field]
		if more := extra[field]; len(more) > 0 {
			combined := make([]string, 0, len(variants)+len(more))
			combined = append(combined, variants...)
			combined = append(combined, more...)
			variants = combined
		}
		return findColumn(headers, variants)
	}

	return ColumnMap{
		Date:         resolve("date"),
		Type:         resolve("type"),
		Title:        resolve("title"),
		Info:         resolve("info"),
		Currency:     resolve("currency"),
		Amount:       resolve("amount"),
		FeesAndTaxes: resolve("feesAndTaxes"),
		Net:          resolve("net"),
	}
}
