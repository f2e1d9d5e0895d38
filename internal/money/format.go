package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	lakh  = decimal.NewFromInt(100_000)
	crore = decimal.NewFromInt(10_000_000)

	printer = message.NewPrinter(language.English)
)

// Format renders a rupee amount in the Indian convention: values of a crore
// and above in "Cr" units, a lakh and above in "L" units, and smaller values
// as a grouped decimal. Trailing zero fractional digits are stripped in every
// branch, so 2.50 renders as "2.5" and 2.00 as "2". Negative amounts are
// formatted from the absolute value and re-prefixed after the symbol.
func Format(a decimal.Decimal, showSymbol bool) string {
	if a.IsZero() {
		if showSymbol {
			return "₹0"
		}
		return "0"
	}

	negative := a.IsNegative()
	abs := a.Abs()

	var out string
	switch {
	case abs.Cmp(crore) >= 0:
		out = grouped(abs.Div(crore)) + " Cr"
	case abs.Cmp(lakh) >= 0:
		out = grouped(abs.Div(lakh)) + " L"
	default:
		out = grouped(abs)
	}

	if showSymbol {
		out = "₹" + out
	}
	if negative {
		out = "-" + out
	}
	return out
}

// FormatString parses raw best-effort and formats it. Malformed input renders
// as the zero amount; formatting never fails back to the caller.
func FormatString(raw string, showSymbol bool) string {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Format(decimal.Zero, showSymbol)
	}
	return Format(value, showSymbol)
}

func grouped(v decimal.Decimal) string {
	out := printer.Sprintf("%.2f", v.InexactFloat64())
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	return out
}
