package equation

import (
	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/money"
)

// Term names one side of the fundamental equation.
type Term string

const (
	TermAssets      Term = "ASSETS"
	TermLiabilities Term = "LIABILITIES"
	TermCapital     Term = "CAPITAL"
	// TermNone means all three terms were supplied and nothing was derived.
	TermNone Term = ""
)

// State holds the known values for one solve request. Assets, Liabilities and
// Capital use explicit presence; a supplied zero counts as known. The
// adjustment fields default to zero, with losses passed as a negative
// ProfitOrLoss.
type State struct {
	Assets      money.Maybe
	Liabilities money.Maybe
	Capital     money.Maybe

	Drawings          decimal.Decimal
	AdditionalCapital decimal.Decimal
	ProfitOrLoss      decimal.Decimal
}

// Step is one line of the worked solution, in display order.
type Step struct {
	Label  string
	Amount decimal.Decimal
}

// Solution carries the completed equation plus the audit trail the shell
// renders as a step-by-step answer.
type Solution struct {
	Assets          decimal.Decimal
	Liabilities     decimal.Decimal
	OriginalCapital decimal.Decimal
	AdjustedCapital decimal.Decimal

	// Solved names the derived term; TermNone when everything was supplied.
	Solved Term
	Steps  []Step
}
