package engine

// Category is the semantic classification of a transaction row.
type Category string

const (
	CategorySale           Category = "sale"
	CategoryListingFee     Category = "listing_fee"
	CategoryTransactionFee Category = "transaction_fee"
	CategoryProcessingFee  Category = "processing_fee"
	CategoryOffsiteAdFee   Category = "offsite_ad_fee"
	CategoryShippingLabel  Category = "shipping_label"
	CategoryShipping       Category = "shipping"
	CategorySalesTax       Category = "sales_tax"
	CategoryRegulatoryFee  Category = "regulatory_fee"
	CategoryOtherFee       Category = "other_fee"
	CategoryRefund         Category = "refund"
	CategoryDeposit        Category = "deposit"
	CategoryOther          Category = "other"
)

// Transaction is one row of a seller's financial export. The date keeps its
// original string form; exports mix several date formats and the raw value
// is what the dashboard displays.
type Transaction struct {
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Info         string  `json:"info"`
	Currency     string  `json:"currency"`
	Amount       float64 `json:"amount"`
	FeesAndTaxes float64 `json:"feesAndTaxes"`
	Net          float64 `json:"net"`
	OrderNumber  string  `json:"orderNumber,omitempty"`
}

// Order aggregates all transactions that share one purchase identifier.
// The last four fields are derived after aggregation completes.
type Order struct {
	OrderNumber     string   `json:"orderNumber"`
	Date            string   `json:"date"`
	Items           []string `json:"items"`
	SaleAmount      float64  `json:"saleAmount"`
	ShippingCharged float64  `json:"shippingCharged"`
	SalesTax        float64  `json:"salesTax"`

	ListingFees           float64 `json:"listingFees"`
	TransactionFees       float64 `json:"transactionFees"`
	PaymentProcessingFees float64 `json:"paymentProcessingFees"`
	OffsiteAdsFees        float64 `json:"offsiteAdsFees"`
	ShippingLabelCost     float64 `json:"shippingLabelCost"`
	RegulatoryFees        float64 `json:"regulatoryFees"`
	OtherFees             float64 `json:"otherFees"`

	TotalRevenue float64 `json:"totalRevenue"`
	TotalFees    float64 `json:"totalFees"`
	NetProfit    float64 `json:"netProfit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// DateRange is the span of parseable transaction dates in an export.
// Both fields are empty when no transaction carried a usable date.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary is the rollup over all retained orders.
type Summary struct {
	TotalSales           float64 `json:"totalSales"`
	TotalShippingCharged float64 `json:"totalShippingCharged"`
	TotalSalesTax        float64 `json:"totalSalesTax"`
	TotalRevenue         float64 `json:"totalRevenue"`

	TotalListingFees           float64 `json:"totalListingFees"`
	TotalTransactionFees       float64 `json:"totalTransactionFees"`
	TotalPaymentProcessingFees float64 `json:"totalPaymentProcessingFees"`
	TotalOffsiteAdsFees        float64 `json:"totalOffsiteAdsFees"`
	TotalShippingLabelCosts    float64 `json:"totalShippingLabelCosts"`
	TotalRegulatoryFees        float64 `json:"totalRegulatoryFees"`
	TotalOtherFees             float64 `json:"totalOtherFees"`

	TotalFees        float64 `json:"totalFees"`
	NetProfit        float64 `json:"netProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	EffectiveFeeRate float64 `json:"effectiveFeeRate"`

	OrderCount int       `json:"orderCount"`
	DateRange  DateRange `json:"dateRange"`
}

// ParsedData is the full result bundle handed to report renderers and the
// dashboard: orders newest first, the summary rollup, and every transaction
// that survived row filtering.
type ParsedData struct {
	Orders          []Order       `json:"orders"`
	Summary         Summary       `json:"summary"`
	RawTransactions []Transaction `json:"rawTransactions"`
}
