// Package money formats monetary amounts for display. The hospital bills in
// rupees with en-IN digit grouping; inventory valuations are shown in dollars
// with en-US grouping, matching the product's existing screens.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency selects the symbol and grouping locale for formatting.
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
)

var symbols = map[Currency]string{
	INR: "₹",
	USD: "$",
}

var printers = map[Currency]*message.Printer{
	INR: message.NewPrinter(language.MustParse("en-IN")),
	USD: message.NewPrinter(language.English),
}

// Format renders v with the currency's symbol and locale grouping, using
// exactly decimals fraction digits (clamped to 0..2).
func Format(v float64, cur Currency, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > 2 {
		decimals = 2
	}
	p, ok := printers[cur]
	if !ok {
		p = printers[INR]
	}
	sym, ok := symbols[cur]
	if !ok {
		sym = symbols[INR]
	}
	return sym + p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

// Rupees formats v as a whole-rupee amount, the default for dashboard stats.
func Rupees(v float64) string { return Format(v, INR, 0) }

// RupeesExact formats v with paise, used on billing screens.
func RupeesExact(v float64) string { return Format(v, INR, 2) }

// Dollars formats v with cents, used on inventory screens.
func Dollars(v float64) string { return Format(v, USD, 2) }
