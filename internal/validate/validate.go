// Package validate holds the field-level checks every engine component runs on
// its own inputs. The presentation shell validates loosely at the widget; the
// engine never trusts it and re-validates here.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/shared"
)

var maxRate = decimal.NewFromInt(28)

// ScheduledRates lists the legal GST slabs in percent.
var ScheduledRates = []int64{0, 5, 12, 18, 28}

// Positive parses raw as a decimal and applies the sign checks of
// PositiveAmount. Failure kinds: NotANumber, Negative, MustBeNonZero.
func Positive(raw, field string, allowZero bool) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, shared.NewError(shared.KindNotANumber, field, field+" must be a valid number")
	}
	return PositiveAmount(value, field, allowZero)
}

// PositiveAmount rejects negative values, and zero unless allowZero is set.
func PositiveAmount(value decimal.Decimal, field string, allowZero bool) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Zero, shared.NewError(shared.KindNegative, field, field+" cannot be negative")
	}
	if !allowZero && value.IsZero() {
		return decimal.Zero, shared.NewError(shared.KindMustBeNonZero, field, field+" must be greater than zero")
	}
	return value, nil
}

// TaxRate checks rate against the Indian GST schedule. A negative rate and a
// rate above 28% fail with their own kinds, distinct from an in-range rate
// that is simply not on the schedule.
func TaxRate(rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, shared.NewError(shared.KindNegativeRate, "rate", "GST rate cannot be negative")
	}
	if rate.Cmp(maxRate) > 0 {
		return decimal.Zero, shared.NewError(shared.KindRateTooHigh, "rate", "GST rate cannot exceed 28%")
	}
	for _, legal := range ScheduledRates {
		if rate.Equal(decimal.NewFromInt(legal)) {
			return rate, nil
		}
	}
	return decimal.Zero, shared.NewError(shared.KindNotAScheduledRate, "rate",
		fmt.Sprintf("invalid GST rate; valid rates are %s%%", scheduleList()))
}

func scheduleList() string {
	parts := make([]string, 0, len(ScheduledRates))
	for _, r := range ScheduledRates {
		parts = append(parts, fmt.Sprintf("%d", r))
	}
	return strings.Join(parts, ", ")
}
