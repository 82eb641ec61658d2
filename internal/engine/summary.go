package engine

import "time"

// Summarize folds the retained orders into one aggregate and derives the
// date range from the full raw transaction list, including rows that never
// made it into an order. No reclassification happens here; it is pure
// addition over the per-order accumulators.
func Summarize(orders []Order, txs []Transaction) Summary {
	var s Summary
	s.OrderCount = len(orders)

	for _, o := range orders {
		s.TotalSales += o.SaleAmount
		s.TotalShippingCharged += o.ShippingCharged
		s.TotalSalesTax += o.SalesTax
		s.TotalListingFees += o.ListingFees
		s.TotalTransactionFees += o.TransactionFees
		s.TotalPaymentProcessingFees += o.PaymentProcessingFees
		s.TotalOffsiteAdsFees += o.OffsiteAdsFees
		s.TotalShippingLabelCosts += o.ShippingLabelCost
		s.TotalRegulatoryFees += o.RegulatoryFees
		s.TotalOtherFees += o.OtherFees
	}

	s.TotalRevenue = s.TotalSales + s.TotalShippingCharged
	s.TotalFees = s.TotalListingFees + s.TotalTransactionFees +
		s.TotalPaymentProcessingFees + s.TotalOffsiteAdsFees +
		s.TotalShippingLabelCosts + s.TotalRegulatoryFees + s.TotalOtherFees
	s.NetProfit = s.TotalRevenue - s.TotalFees
	if s.TotalRevenue > 0 {
		s.ProfitMargin = s.NetProfit / s.TotalRevenue * 100
		s.EffectiveFeeRate = s.TotalFees / s.TotalRevenue * 100
	}

	var start, end time.Time
	seen := false
	for _, tx := range txs {
		d, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		if !seen || d.Before(start) {
			start = d
		}
		if !seen || d.After(end) {
			end = d
		}
		seen = true
	}
	if seen {
		s.DateRange.Start = start.Format("2006-01-02")
		s.DateRange.End = end.Format("2006-01-02")
	}

	return s
}
