// Package demo carries a canned report bundle for users who want to see
// the dashboard before uploading their own export.
package demo

import "github.com/craftledger/etsyprofit/internal/engine"

var demoOrders = []engine.Order{
	{
		OrderNumber:           "3847291056",
		Date:                  "2024-12-10",
		Items:                 []string{"Handmade Ceramic Mug - Blue Glaze"},
		SaleAmount:            34.99,
		ShippingCharged:       8.50,
		SalesTax:              3.22,
		TotalRevenue:          43.49,
		ListingFees:           0.20,
		TransactionFees:       2.83,
		PaymentProcessingFees: 1.58,
		ShippingLabelCost:     5.25,
		RegulatoryFees:        0.30,
		TotalFees:             10.16,
		NetProfit:             33.33,
		ProfitMargin:          76.6,
	},
	{
		OrderNumber:           "3847291057",
		Date:                  "2024-12-09",
		Items:                 []string{"Custom Pet Portrait - Digital Download"},
		SaleAmount:            45.00,
		SalesTax:              4.05,
		TotalRevenue:          45.00,
		ListingFees:           0.20,
		TransactionFees:       2.93,
		PaymentProcessingFees: 1.63,
		OffsiteAdsFees:        5.40,
		RegulatoryFees:        0.30,
		TotalFees:             10.46,
		NetProfit:             34.54,
		ProfitMargin:          76.8,
	},
	{
		OrderNumber:           "3847291058",
		Date:                  "2024-12-08",
		Items:                 []string{"Knitted Baby Blanket - Soft Pink"},
		SaleAmount:            89.99,
		ShippingCharged:       12.00,
		SalesTax:              9.18,
		TotalRevenue:          101.99,
		ListingFees:           0.20,
		TransactionFees:       6.63,
		PaymentProcessingFees: 3.36,
		OffsiteAdsFees:        12.24,
		ShippingLabelCost:     8.95,
		RegulatoryFees:        0.30,
		TotalFees:             31.68,
		NetProfit:             70.31,
		ProfitMargin:          68.9,
	},
	{
		OrderNumber:           "3847291059",
		Date:                  "2024-12-07",
		Items:                 []string{"Vintage Style Earrings - Gold"},
		SaleAmount:            28.00,
		ShippingCharged:       4.50,
		SalesTax:              2.93,
		TotalRevenue:          32.50,
		ListingFees:           0.20,
		TransactionFees:       2.11,
		PaymentProcessingFees: 1.24,
		ShippingLabelCost:     3.75,
		RegulatoryFees:        0.30,
		TotalFees:             7.60,
		NetProfit:             24.90,
		ProfitMargin:          76.6,
	},
	{
		OrderNumber:           "3847291060",
		Date:                  "2024-12-06",
		Items:                 []string{"Personalized Leather Wallet"},
		SaleAmount:            65.00,
		ShippingCharged:       7.99,
		SalesTax:              6.57,
		TotalRevenue:          72.99,
		ListingFees:           0.20,
		TransactionFees:       4.74,
		PaymentProcessingFees: 2.46,
		OffsiteAdsFees:        8.76,
		ShippingLabelCost:     6.15,
		RegulatoryFees:        0.30,
		TotalFees:             22.61,
		NetProfit:             50.38,
		ProfitMargin:          69.0,
	},
}

// Data returns the demo report bundle. The orders are fixed; the summary is
// summed from them at call time so the totals always agree.
func Data() *engine.ParsedData {
	orders := make([]engine.Order, len(demoOrders))
	copy(orders, demoOrders)

	var s engine.Summary
	s.OrderCount = len(orders)
	for _, o := range orders {
		s.TotalSales += o.SaleAmount
		s.TotalShippingCharged += o.ShippingCharged
		s.TotalSalesTax += o.SalesTax
		s.TotalRevenue += o.TotalRevenue
		s.TotalListingFees += o.ListingFees
		s.TotalTransactionFees += o.TransactionFees
		s.TotalPaymentProcessingFees += o.PaymentProcessingFees
		s.TotalOffsiteAdsFees += o.OffsiteAdsFees
		s.TotalShippingLabelCosts += o.ShippingLabelCost
		s.TotalRegulatoryFees += o.RegulatoryFees
		s.TotalOtherFees += o.OtherFees
		s.TotalFees += o.TotalFees
		s.NetProfit += o.NetProfit
	}
	s.ProfitMargin = s.NetProfit / s.TotalRevenue * 100
	s.EffectiveFeeRate = s.TotalFees / s.TotalRevenue * 100
	s.DateRange = engine.DateRange{Start: "2024-12-06", End: "2024-12-10"}

	return &engine.ParsedData{
		Orders:          orders,
		Summary:         s,
		RawTransactions: []engine.Transaction{},
	}
}
