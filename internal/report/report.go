// Package report renders a parsed profit report for the terminal or as
// JSON for downstream consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/craftledger/etsyprofit/internal/engine"
)

// Options controls table rendering
type Options struct {
	Currency  Currency
	MaxOrders int // 0 shows all orders
}

// CurrencyFor picks the display currency from the export itself: the first
// transaction that carries a currency code decides, USD otherwise.
func CurrencyFor(data *engine.ParsedData) Currency {
	for _, tx := range data.RawTransactions {
		if tx.Currency != "" {
			return GetCurrency(tx.Currency)
		}
	}
	return GetCurrency("USD")
}

// PrintJSON writes the full parsed bundle as indented JSON.
func PrintJSON(w io.Writer, data *engine.ParsedData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// PrintTable renders the profit summary followed by the per-order
// breakdown, newest order first.
func PrintTable(w io.Writer, data *engine.ParsedData, opts Options) {
	s := data.Summary
	cur := opts.Currency

	fmt.Fprintf(w, "Parsed %d transactions into %d orders",
		len(data.RawTransactions), s.OrderCount)
	if s.DateRange.Start != "" {
		fmt.Fprintf(w, " (%s to %s)", s.DateRange.Start, s.DateRange.End)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	printSummaryTable(w, s, cur)

	if len(data.Orders) == 0 {
		return
	}
	fmt.Fprintln(w)
	printOrdersTable(w, data.Orders, opts)
}

func printSummaryTable(w io.Writer, s engine.Summary, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Profit Summary")

	t.AppendRows([]table.Row{
		{"Sales", cur.Format(s.TotalSales)},
		{"Shipping charged", cur.Format(s.TotalShippingCharged)},
		{"Sales tax collected", cur.Format(s.TotalSalesTax)},
		{"Total revenue", cur.Format(s.TotalRevenue)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Listing fees", cur.Format(s.TotalListingFees)},
		{"Transaction fees", cur.Format(s.TotalTransactionFees)},
		{"Payment processing", cur.Format(s.TotalPaymentProcessingFees)},
		{"Offsite ads", cur.Format(s.TotalOffsiteAdsFees)},
		{"Shipping labels", cur.Format(s.TotalShippingLabelCosts)},
		{"Regulatory fees", cur.Format(s.TotalRegulatoryFees)},
		{"Other fees", cur.Format(s.TotalOtherFees)},
		{"Total fees", cur.Format(s.TotalFees)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{text.Bold.Sprint("Net profit"), text.Bold.Sprint(cur.Format(s.NetProfit))},
		{"Profit margin", fmt.Sprintf("%.1f%%", s.ProfitMargin)},
		{"Effective fee rate", fmt.Sprintf("%.1f%%", s.EffectiveFeeRate)},
	})

	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

func printOrdersTable(w io.Writer, orders []engine.Order, opts Options) {
	cur := opts.Currency

	shown := orders
	if opts.MaxOrders > 0 && len(shown) > opts.MaxOrders {
		shown = shown[:opts.MaxOrders]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Order", "Date", "Items", "Revenue", "Fees", "Profit", "Margin"})

	for _, o := range shown {
		profit := cur.Format(o.NetProfit)
		if o.NetProfit < 0 {
			profit = text.FgRed.Sprint(profit)
		}
		t.AppendRow(table.Row{
			o.OrderNumber,
			o.Date,
			truncate(strings.Join(o.Items, ", "), 40),
			cur.Format(o.TotalRevenue),
			cur.Format(o.TotalFees),
			profit,
			fmt.Sprintf("%.1f%%", o.ProfitMargin),
		})
	}

	if len(shown) < len(orders) {
		t.AppendFooter(table.Row{
			"", "", fmt.Sprintf("%d more orders not shown", len(orders)-len(shown)), "", "", "", "",
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	t.Render()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-2] + ".."
}
