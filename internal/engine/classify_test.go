package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		title    string
		expected Category
	}{
		{"sale by type", "Sale", "Handmade Mug", CategorySale},
		{"payment counts as sale", "Payment", "", CategorySale},
		{"sale by title", "", "Sale of ceramic bowl", CategorySale},
		{"listing fee", "Fee", "Listing fee", CategoryListingFee},
		{"transaction fee", "Fee: Transaction Fee", "", CategoryTransactionFee},
		{"payment in type wins over processing", "Payment Processing Fee", "", CategorySale},
		{"processing fee", "Processing Fee", "", CategoryProcessingFee},
		{"offsite ads", "Marketing", "Offsite Ads Fee", CategoryOffsiteAdFee},
		{"shipping label", "Shipping", "USPS shipping label", CategoryShippingLabel},
		{"shipping label via type", "Shipping Label", "", CategoryShippingLabel},
		{"plain shipping", "Shipping", "Buyer paid postage", CategoryShipping},
		{"shipping in title only is not shipping", "", "shipping something", CategoryOther},
		{"sales tax", "Tax", "", CategorySalesTax},
		{"tax via title", "", "VAT tax collected", CategorySalesTax},
		{"regulatory fee", "Regulatory Operating Fee", "", CategoryRegulatoryFee},
		{"generic fee", "Fee", "Mystery charge", CategoryOtherFee},
		{"refund", "Refund", "", CategoryRefund},
		{"deposit", "Deposit", "", CategoryDeposit},
		{"no match", "Adjustment", "Something else", CategoryOther},
		{"case insensitive", "SALE", "", CategorySale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.typ, tt.title)
			if got != tt.expected {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.typ, tt.title, got, tt.expected)
			}
		})
	}
}

// The cascade order decides ambiguous rows: "Transaction Fee" matches both
// the transaction rule and the generic fee rule, and must take the former.
func TestClassifyPriority(t *testing.T) {
	if got := Classify("Fee", "Transaction fee"); got != CategoryTransactionFee {
		t.Errorf("expected transaction_fee, got %q", got)
	}
	if got := Classify("Transaction Fee", ""); got != CategoryTransactionFee {
		t.Errorf("expected transaction_fee, got %q", got)
	}
	// A shipping label is not plain shipping.
	if got := Classify("Shipping", "Shipping label for order"); got != CategoryShippingLabel {
		t.Errorf("expected shipping_label, got %q", got)
	}
}
