package gst

import "github.com/shopspring/decimal"

// Input describes one GST calculation request. Amount is the transaction
// value, tax-inclusive when Inclusive is set. FromState and ToState, when
// both supplied and different, classify the transaction as interstate;
// otherwise the explicit Interstate selector decides.
type Input struct {
	Amount      decimal.Decimal
	RatePercent decimal.Decimal
	Inclusive   bool

	Interstate bool
	FromState  string
	ToState    string

	// ReverseCharge shifts liability to the recipient. The arithmetic is
	// unchanged; journal auto-generation refuses such splits.
	ReverseCharge bool

	HSNCode     string
	Description string
}

// Step is one line of the worked GST calculation.
type Step struct {
	Label  string
	Amount decimal.Decimal
}

// Split is the jurisdiction-correct decomposition of a taxed amount. Exactly
// one of the CGST/SGST pair and IGST is non-zero, and the components always
// sum to Tax.
type Split struct {
	Basic decimal.Decimal
	Tax   decimal.Decimal
	CGST  decimal.Decimal
	SGST  decimal.Decimal
	IGST  decimal.Decimal
	Total decimal.Decimal

	RatePercent   decimal.Decimal
	Interstate    bool
	ReverseCharge bool

	HSNCode     string
	Description string

	Steps []Step
}
