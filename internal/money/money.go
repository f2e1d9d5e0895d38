package money

import "github.com/shopspring/decimal"

// Tolerance is the maximum difference at which two rupee amounts are still
// considered equal. Journal balance checks and equation verification both
// compare against it.
var Tolerance = decimal.New(1, -2)

// EqualWithin reports whether a and b differ by at most Tolerance.
func EqualWithin(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().Cmp(Tolerance) <= 0
}

// Maybe is an explicitly optional amount. A supplied zero is a known value;
// only Set distinguishes known from missing.
type Maybe struct {
	Value decimal.Decimal
	Set   bool
}

// Known wraps v as a supplied amount.
func Known(v decimal.Decimal) Maybe {
	return Maybe{Value: v, Set: true}
}

// KnownFloat wraps a float-derived amount, for callers fed by form widgets.
func KnownFloat(v float64) Maybe {
	return Maybe{Value: decimal.NewFromFloat(v), Set: true}
}

// Unknown returns the missing amount.
func Unknown() Maybe {
	return Maybe{}
}
