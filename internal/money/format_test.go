package money

import (
	"testing"

	"github.com/shopspring/decimal"

	_ "github.com/lekha-engine/lekha-engine/testing"
)

func TestFormatMagnitudeBranches(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		symbol bool
		want   string
	}{
		{"zero with symbol", "0", true, "₹0"},
		{"zero without symbol", "0", false, "0"},
		{"plain grouped", "1234.5", false, "1,234.5"},
		{"grouped upper bound", "99999", false, "99,999"},
		{"two lakh", "200000", true, "₹2 L"},
		{"fractional lakh", "250000", false, "2.5 L"},
		{"lakh lower bound", "100000", false, "1 L"},
		{"crore", "12500000", false, "1.25 Cr"},
		{"crore lower bound", "10000000", true, "₹1 Cr"},
		{"big crore grouped", "12500000000", false, "1,250 Cr"},
		{"strips trailing zeros", "2.50", false, "2.5"},
		{"strips trailing point", "2.00", false, "2"},
		{"negative after symbol", "-250000", true, "-₹2.5 L"},
		{"negative plain", "-42", false, "-42"},
	}
	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		if got := Format(amount, tc.symbol); got != tc.want {
			t.Fatalf("%s: Format(%s, %v) = %q, want %q", tc.name, tc.amount, tc.symbol, got, tc.want)
		}
	}
}

func TestFormatStringMalformedFallsBackToZero(t *testing.T) {
	if got := FormatString("not-a-number", true); got != "₹0" {
		t.Fatalf("expected zero rendering with symbol, got %q", got)
	}
	if got := FormatString("", false); got != "0" {
		t.Fatalf("expected zero rendering, got %q", got)
	}
	if got := FormatString(" 200000 ", true); got != "₹2 L" {
		t.Fatalf("expected trimmed parse, got %q", got)
	}
}
