package engine

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"time"
)

// dateLayouts covers the date formats seen across Etsy export variants.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// parseDate tries the known export layouts. The second return value is
// false when none of them fit.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AggregateOrders folds classified transactions into per-order financial
// records. Deposits never attach to an order. Transactions without an
// extractable order number each get their own synthetic key; the counter is
// local to the call, so repeated runs over the same input give identical
// results.
//
// Orders that end up with neither sales nor fees are dropped as noise, and
// the survivors are returned newest first.
func AggregateOrders(txs []Transaction) []Order {
	orderMap := make(map[string]*Order)
	var keys []string
	unassigned := 0

	for _, tx := range txs {
		category := Classify(tx.Type, tx.Title)
		if category == CategoryDeposit {
			continue
		}

		key := tx.OrderNumber
		if key == "" {
			key = fmt.Sprintf("unassigned-%d", unassigned)
			unassigned++
		}

		order, ok := orderMap[key]
		if !ok {
			order = &Order{OrderNumber: key, Date: tx.Date, Items: []string{}}
			orderMap[key] = order
			keys = append(keys, key)
		}

		// Fee rows usually carry the charge in the fees column; older
		// exports only fill the amount column.
		feeAmount := tx.FeesAndTaxes
		if feeAmount == 0 {
			feeAmount = tx.Amount
		}

		switch category {
		case CategorySale:
			order.SaleAmount += math.Abs(tx.Amount)
			if tx.Title != "" && !slices.Contains(order.Items, tx.Title) {
				order.Items = append(order.Items, tx.Title)
			}
		case CategoryShipping:
			order.ShippingCharged += math.Abs(tx.Amount)
		case CategorySalesTax:
			order.SalesTax += math.Abs(tx.Amount)
		case CategoryListingFee:
			order.ListingFees += math.Abs(feeAmount)
		case CategoryTransactionFee:
			order.TransactionFees += math.Abs(feeAmount)
		case CategoryProcessingFee:
			order.PaymentProcessingFees += math.Abs(feeAmount)
		case CategoryOffsiteAdFee:
			order.OffsiteAdsFees += math.Abs(feeAmount)
		case CategoryShippingLabel:
			order.ShippingLabelCost += math.Abs(tx.Amount)
		case CategoryRegulatoryFee:
			order.RegulatoryFees += math.Abs(feeAmount)
		case CategoryRefund:
			// Refunds reduce the sale and may drive it negative.
			order.SaleAmount -= math.Abs(tx.Amount)
		default:
			if tx.FeesAndTaxes < 0 {
				order.OtherFees += math.Abs(tx.FeesAndTaxes)
			}
		}
	}

	orders := make([]Order, 0, len(keys))
	for _, key := range keys {
		order := *orderMap[key]
		finalizeOrder(&order)
		if order.SaleAmount > 0 || order.TotalFees > 0 {
			orders = append(orders, order)
		}
	}

	sortOrdersByDate(orders)
	return orders
}

// finalizeOrder computes the derived fields once all transactions for the
// order have been folded in.
func finalizeOrder(o *Order) {
	o.TotalRevenue = o.SaleAmount + o.ShippingCharged
	o.TotalFees = o.ListingFees + o.TransactionFees + o.PaymentProcessingFees +
		o.OffsiteAdsFees + o.ShippingLabelCost + o.RegulatoryFees + o.OtherFees
	o.NetProfit = o.TotalRevenue - o.TotalFees
	if o.TotalRevenue > 0 {
		o.ProfitMargin = o.NetProfit / o.TotalRevenue * 100
	} else {
		o.ProfitMargin = 0
	}
}

// sortOrdersByDate sorts newest first. Orders whose date cannot be parsed
// sort after all dated orders and keep their first-seen order among
// themselves.
func sortOrdersByDate(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		di, iok := parseDate(orders[i].Date)
		dj, jok := parseDate(orders[j].Date)
		switch {
		case iok && jok:
			return di.After(dj)
		case iok:
			return true
		default:
			return false
		}
	})
}
