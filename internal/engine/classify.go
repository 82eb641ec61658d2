package engine

import "strings"

// classifierRule pairs a predicate over the lowercased (type, title) pair
// with the category it assigns.
type classifierRule struct {
	category Category
	match    func(typ, title string) bool
}

// either matches when type or title contains any of the substrings.
func either(subs ...string) func(typ, title string) bool {
	return func(typ, title string) bool {
		for _, s := range subs {
			if strings.Contains(typ, s) || strings.Contains(title, s) {
				return true
			}
		}
		return false
	}
}

// typeHas matches on the type field only.
func typeHas(sub string) func(typ, title string) bool {
	return func(typ, _ string) bool {
		return strings.Contains(typ, sub)
	}
}

// classifierRules is the classification cascade, evaluated top to bottom
// with first match wins. The order is load-bearing: "transaction" must land
// before the generic "fee" rule, and shipping labels before plain shipping.
var classifierRules = []classifierRule{
	{CategorySale, either("sale", "payment")},
	{CategoryListingFee, either("listing")},
	{CategoryTransactionFee, either("transaction")},
	{CategoryProcessingFee, either("processing")},
	{CategoryOffsiteAdFee, either("offsite")},
	{CategoryShippingLabel, func(typ, title string) bool {
		return strings.Contains(typ, "shipping") &&
			(strings.Contains(typ, "label") || strings.Contains(title, "label"))
	}},
	{CategoryShipping, typeHas("shipping")},
	{CategorySalesTax, either("tax")},
	{CategoryRegulatoryFee, either("regulatory")},
	{CategoryOtherFee, either("fee")},
	{CategoryRefund, typeHas("refund")},
	{CategoryDeposit, typeHas("deposit")},
}

// Classify assigns a transaction to exactly one category from its type and
// title text. Rows matching no rule are CategoryOther.
func Classify(typ, title string) Category {
	typ = strings.ToLower(typ)
	title = strings.ToLower(title)
	for _, r := range classifierRules {
		if r.match(typ, title) {
			return r.category
		}
	}
	return CategoryOther
}
