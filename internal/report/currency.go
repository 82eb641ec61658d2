package report

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats report amounts for one ISO currency code.
type Currency struct {
	Code    string // "USD", "EUR", "GBP"
	symbol  string // non-empty overrides the x/text symbol
	unit    currency.Unit
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// defaultLocaleForCurrency picks a "home" locale per currency for number
// formatting. Etsy settles most shops in one of these.
var defaultLocaleForCurrency = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"CAD": language.CanadianFrench,
	"AUD": language.MustParse("en-AU"),
	"NZD": language.MustParse("en-NZ"),
	"SEK": language.Swedish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"JPY": language.Japanese,
	"PLN": language.Polish,
}

// GetCurrency returns formatting rules for a code. Unknown codes fall back
// to using the code itself as the symbol.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}

	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD // fallback unit for number formatting only
	}

	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}

	c := Currency{
		Code:    code,
		symbol:  symbolOverrides[code],
		unit:    unit,
		printer: message.NewPrinter(tag),
	}

	if isUnknown {
		c.symbol = code
	}

	return c
}

// getSymbol returns the currency symbol, using overrides where needed
func (c Currency) getSymbol() string {
	if c.symbol != "" {
		return c.symbol
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// isPrefix returns true if this currency symbol should be placed before the
// amount. golang.org/x/text/currency doesn't implement symbol positioning
// from CLDR patterns yet, so the list is maintained here.
func (c Currency) isPrefix() bool {
	switch c.Code {
	case "USD", "GBP", "JPY", "CAD", "AUD", "MXN", "HKD", "SGD", "NZD", "ZAR":
		return true
	default:
		return false
	}
}

// Format renders an amount with two fraction digits and the currency symbol.
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := c.getSymbol()

	if c.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
