package demo

import (
	"math"
	"testing"
)

func TestDataConsistency(t *testing.T) {
	data := Data()

	if len(data.Orders) != 5 || data.Summary.OrderCount != 5 {
		t.Fatalf("expected 5 demo orders, got %d (summary %d)",
			len(data.Orders), data.Summary.OrderCount)
	}

	var revenue, fees, profit float64
	for _, o := range data.Orders {
		if math.Abs(o.TotalRevenue-(o.SaleAmount+o.ShippingCharged)) > 0.001 {
			t.Errorf("order %s: revenue %v != sale %v + shipping %v",
				o.OrderNumber, o.TotalRevenue, o.SaleAmount, o.ShippingCharged)
		}
		if math.Abs(o.NetProfit-(o.TotalRevenue-o.TotalFees)) > 0.001 {
			t.Errorf("order %s: profit %v != revenue %v - fees %v",
				o.OrderNumber, o.NetProfit, o.TotalRevenue, o.TotalFees)
		}
		revenue += o.TotalRevenue
		fees += o.TotalFees
		profit += o.NetProfit
	}

	if math.Abs(data.Summary.TotalRevenue-revenue) > 0.001 {
		t.Errorf("summary revenue %v, orders sum to %v", data.Summary.TotalRevenue, revenue)
	}
	if math.Abs(data.Summary.TotalFees-fees) > 0.001 {
		t.Errorf("summary fees %v, orders sum to %v", data.Summary.TotalFees, fees)
	}
	if math.Abs(data.Summary.NetProfit-profit) > 0.001 {
		t.Errorf("summary profit %v, orders sum to %v", data.Summary.NetProfit, profit)
	}
	if data.Summary.DateRange.Start != "2024-12-06" || data.Summary.DateRange.End != "2024-12-10" {
		t.Errorf("unexpected date range %+v", data.Summary.DateRange)
	}
}

func TestDataReturnsCopies(t *testing.T) {
	a := Data()
	a.Orders[0].SaleAmount = 0

	b := Data()
	if b.Orders[0].SaleAmount == 0 {
		t.Error("mutating one result leaked into the next")
	}
}
