// Package format renders instrument values the way IDX investors read them:
// rupiah without fraction, id-ID digit grouping, returns as percentages.
package format

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	idrFormatter = &money.Formatter{
		Fraction: 0,
		Decimal:  ",",
		Thousand: ".",
		Grapheme: "Rp",
		Template: "$ 1",
	}
	printer = message.NewPrinter(language.Indonesian)

	hundred  = decimal.NewFromInt(100)
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
)

// Currency formats a rupiah amount rounded to whole rupiah, e.g. "Rp 9.500"
func Currency(v float64) string {
	return idrFormatter.Format(decimal.NewFromFloat(v).Round(0).IntPart())
}

// Number formats with id-ID grouping and at most two fraction digits,
// e.g. 1234.567 -> "1.234,57"
func Number(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Percent turns a fractional return into a percentage string,
// e.g. -0.0154 -> "-1.54%"
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Mul(hundred).StringFixed(2) + "%"
}

// SignedPercent is Percent with an explicit "+" for gains
func SignedPercent(v float64) string {
	if v > 0 {
		return "+" + Percent(v)
	}
	return Percent(v)
}

// MarketCap abbreviates large rupiah amounts: "T" for trillions and "M" for
// billions (Indonesian "miliar"). Smaller values are printed as is.
func MarketCap(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case d.GreaterThanOrEqual(trillion):
		return d.Div(trillion).StringFixed(2) + " T"
	case d.GreaterThanOrEqual(billion):
		return d.Div(billion).StringFixed(2) + " M"
	default:
		return d.String()
	}
}

// Ratio formats a valuation multiple such as PER, e.g. "24,1x".
// Zero means the upstream has no value and renders as "N/A".
func Ratio(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return Number(v) + "x"
}
